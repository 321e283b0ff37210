package main

import "github.com/notargets/interpn/cmd"

func main() {
	cmd.Execute()
}
