package main

import (
	"os"

	"github.com/yiblet/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args, os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}
