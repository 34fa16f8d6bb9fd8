package main

import "github.com/scrapline-dev/scrapline/internal/cli"

func main() {
	cli.Execute()
}
