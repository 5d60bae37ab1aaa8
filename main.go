package main

import "github.com/beatmaking/rollsheet/cmd"

func main() {
	cmd.Execute()
}
