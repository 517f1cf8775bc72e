package main

import "recipe-converter/internal/cli"

func main() {
	cli.Execute()
}
