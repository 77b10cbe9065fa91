package main

import "shoestock/cmd"

func main() {
	cmd.Execute()
}
