package main

import "github.com/genart-io/go-shadegen/internal/cli"

func main() {
	cli.Execute()
}
