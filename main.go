package main

import (
	"os"

	"github.com/thenoetrevino/todos/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
