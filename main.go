package main

import "github.com/jsphweid/chordbook/cmd"

func main() {
	cmd.Execute()
}
