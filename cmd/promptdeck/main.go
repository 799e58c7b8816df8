// The promptdeck CLI drives the prompt store: category, section, and
// prompt CRUD, sibling reordering, and title search. It stands in for the
// desktop front end, which calls the same store operations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
