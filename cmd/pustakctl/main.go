// Command pustakctl is the operator tool of the book donation service.
// It applies the database schema, promotes accounts to coordinator or admin,
// and bootstraps the first admin account.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
