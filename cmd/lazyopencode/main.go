package main

import "github.com/iheanyi/lazyopencode/internal/cli"

func main() {
	cli.Execute()
}
