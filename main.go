package main

import (
	"fmt"
	"os"

	"foldercat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "foldercat: %v\n", err)
		os.Exit(1)
	}
}
