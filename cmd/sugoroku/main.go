package main

import "github.com/mcoot/sugoroku/internal/cli"

func main() {
	cli.Execute()
}
