package main

import "semisim/cmd/semisim/cmd"

func main() {
	cmd.Execute()
}
