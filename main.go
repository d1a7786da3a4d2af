package main

import "github.com/h4z31/bouyomi/cmd"

func main() {
	cmd.Execute()
}
