package main

import "github.com/kasuboski/mediaguess/cmd"

func main() {
	cmd.Execute()
}
