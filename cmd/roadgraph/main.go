package main

import (
	"github.com/LdDl/roadgraph/cmd/roadgraph/commands"
)

func main() {
	commands.Execute()
}
