// Command bookshelf serves the saved-books GraphQL API.
package main

import (
	"fmt"
	"os"

	"bookshelf/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "bookshelf server stopped: %s\n", err)
		os.Exit(1)
	}
}
