package main

import (
	"os"
)

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		os.Exit(1)
	}
}
