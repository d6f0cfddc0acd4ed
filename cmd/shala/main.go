package main

import "github.com/shalafinder/shala/cmd/shala/cmd"

func main() {
	cmd.Execute()
}
