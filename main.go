package main

import "github.com/user/cliphunter-tui/cmd"

func main() {
	cmd.Execute()
}
