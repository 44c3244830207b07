package main

import "github.com/tranvictor/algosend/cmd"

func main() {
	cmd.Execute()
}
