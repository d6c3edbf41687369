// Command ratingsctl administers a content ratings store: schema migration,
// fixture seeding, API token creation and top-rated listings.
package main

import (
	"fmt"
	"os"
)

import _ "github.com/joho/godotenv/autoload"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
