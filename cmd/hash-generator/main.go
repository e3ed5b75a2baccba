// Command hash-generator prints bcrypt hashes for seeding member rows by hand.
//
//	hash-generator [-cost 12] password...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hoorayhoa/hoa-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", auth.DefaultCost, "bcrypt work factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	if err := run(os.Stdout, auth.NewBcryptHasher(*cost), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for i, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("password %d: %w", i+1, err)
		}
		fmt.Fprintln(w, hash)
	}
	return nil
}
