package main

import (
	"os"

	"gem/cli"
)

func main() {
	os.Exit(cli.Main())
}
