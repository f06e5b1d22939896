// Package cli canonicalizes one vaultpass invocation and orchestrates it:
// resolve the requested length, authorize the target path, generate the
// token, write the file. All prompting goes through the injected Confirmer,
// which keeps every flow black-box testable.
package cli

import (
	"fmt"
	"io"
	"os"

	"vaultpass/internal/guard"
	"vaultpass/internal/prompt"
	"vaultpass/internal/secret"
)

// RunResult describes a completed write.
type RunResult struct {
	// Path is the absolute destination the secret was written to.
	Path string
	// Bytes is the resolved entropy length, which may differ from the
	// requested one when the user fell back to the recommended default.
	Bytes int
}

// Run executes one generate-and-write invocation.
//
// Every failure path returns before the file is opened, so there is never a
// partial write to roll back: length resolution and path authorization both
// complete (or abort) strictly before any bytes hit disk.
func Run(opts Options, c prompt.Confirmer, stdout io.Writer) (RunResult, error) {
	opts, err := NormalizeOptions(opts)
	if err != nil {
		return RunResult{}, err
	}

	length, err := secret.ResolveLength(opts.Length, secret.RecommendedLength, c)
	if err != nil {
		return RunResult{}, err
	}

	if err := guard.Authorize(opts.Path, opts.Overwrite, opts.CreateParents, c); err != nil {
		return RunResult{}, err
	}

	token, err := secret.Token(length)
	if err != nil {
		return RunResult{}, err
	}

	fmt.Fprintf(stdout, "Writing secret to: %s\n", opts.Path)
	// The file holds exactly the token, no trailing newline: vault tooling
	// reads the passphrase byte-for-byte.
	if err := os.WriteFile(opts.Path, []byte(token), 0o644); err != nil {
		return RunResult{}, fmt.Errorf("write secret file %s: %w", opts.Path, err)
	}
	fmt.Fprintf(stdout, "Secret written successfully to '%s'. Exiting.\n", opts.Path)

	return RunResult{Path: opts.Path, Bytes: length}, nil
}
