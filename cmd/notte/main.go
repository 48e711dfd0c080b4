package main

import "github.com/Gautam-Hegde/notte-go/internal/cli"

func main() {
	cli.Execute()
}
