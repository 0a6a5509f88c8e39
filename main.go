package main

import "github.com/denismitr/intset/cmd"

func main() {
	cmd.Execute()
}
