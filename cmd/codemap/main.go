package main

import "github.com/codemap-dev/codemap/internal/cli"

func main() {
	cli.Execute()
}
