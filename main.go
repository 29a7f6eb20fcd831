package main

import (
	"pkm-forge/cli"
)

func main() {
	cli.Start()
}
