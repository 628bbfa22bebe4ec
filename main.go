package main

import "github.com/notesmgr/notectx/cmd"

func main() {
	cmd.Execute()
}
