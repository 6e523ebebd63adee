package main

import "regstub/cmd/regstub/cmd"

func main() {
	cmd.Execute()
}
