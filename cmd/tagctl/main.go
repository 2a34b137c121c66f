/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command tagctl edits a tag snapshot file and syncs it with DynamoDB.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
