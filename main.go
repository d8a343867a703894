package main

import "github.com/csforge/csforge/cmd"

func main() {
	cmd.Execute()
}
