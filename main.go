package main

import "github.com/tossaporn/school-budget/cmd"

func main() {
	cmd.Execute()
}
