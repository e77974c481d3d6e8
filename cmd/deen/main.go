package main

import "deen/internal/cli"

func main() {
	cli.Execute()
}
