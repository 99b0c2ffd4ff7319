package main

import "addline/cmd/addline/cmd"

func main() {
	cmd.Execute()
}
