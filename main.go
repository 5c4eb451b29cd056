package main

import "github.com/polarbytes/floe/cmd"

func main() {
	cmd.Execute()
}
