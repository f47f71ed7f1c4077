package main

import "printutils/internal/cli"

func main() {
	cli.Execute()
}
