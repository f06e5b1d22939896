package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"vaultpass/internal/cli"
)

// main is a thin boundary: flags and environment are canonicalized into
// Options before any core logic runs, and every error maps to a semantic
// exit code.
func main() {
	// A .env next to the provisioning checkout may pin VAULT_PASS_FILE and
	// VAULT_PASS_LENGTH; its absence is not an error.
	_ = godotenv.Load()

	if err := cli.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
