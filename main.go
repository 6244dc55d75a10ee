package main

import "manualrag/cmd"

func main() {
	cmd.Execute()
}
