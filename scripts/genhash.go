package main

import (
	"fmt"
	"os"

	"go-careerhub-backend/pkg/password"
)

// Small helper for generating bcrypt hashes, useful when preparing
// fixture accounts by hand. Usage: go run ./scripts <password>...
func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("usage: genhash <password>...")
		os.Exit(1)
	}

	for _, pass := range args {
		hash, err := password.Hash(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
