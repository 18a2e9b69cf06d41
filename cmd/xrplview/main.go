package main

import "xrplview/internal/cli"

func main() {
	cli.Execute()
}
