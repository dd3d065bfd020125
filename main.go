package main

import "github.com/philipparndt/facestl/internal/cmd"

func main() {
	cmd.Parse()
}
