package main

import "github.com/nadza/Yahtzee/internal/cli"

func main() {
	cli.Execute()
}
