package main

import "github.com/LavenderBridge/verdure/cmd"

func main() {
	cmd.Execute()
}
