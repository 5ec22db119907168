package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/bjaus/pastetab/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}
