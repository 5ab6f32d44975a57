package main

import "pkgmanifest/internal/cli"

func main() {
	cli.Execute()
}
