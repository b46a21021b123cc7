package main

import "github.com/voidrun/slipstream/cmd"

func main() {
	cmd.Execute()
}
