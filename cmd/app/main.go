package main

import "wholesale/cmd"

func main() {
	cmd.Execute()
}
