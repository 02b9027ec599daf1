package main

import "github.com/ordigital/spotled-gui/cmd/spotled-gui/cmd"

func main() {
	cmd.Execute()
}
