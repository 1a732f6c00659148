// cmd/genhash — prints a salt/hash pair for a password given on the command
// line, for seeding users by hand.
package main

import (
	"fmt"
	"os"

	"retailpos/internal/auth"
)

func main() {
	password := "admin123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	salt, hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	fmt.Printf("salt: %s\nhash: %s\n", salt, hash)
}
