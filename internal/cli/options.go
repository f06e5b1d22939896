package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"vaultpass/internal/guard"
	"vaultpass/internal/secret"
)

// Exit codes are a compatibility contract: provisioning scripts branch on
// them, so each abort path keeps a distinct non-zero code and none of them
// is ever reused for success.
const (
	ExitSuccess               = 0
	ExitFilesystemError       = 1
	ExitInvalidInput          = 2
	ExitLengthAborted         = 3
	ExitMissingParentDeclined = 4
	ExitOverwriteDeclined     = 5
)

// Options is the canonical description of one invocation, after flag and
// environment defaults have been applied.
type Options struct {
	// Length is the number of random bytes, not output characters.
	Length        int
	Path          string
	Overwrite     bool
	CreateParents bool
}

// InvalidInputError reports malformed arguments. It is returned before any
// prompt is shown, so an invalid invocation never blocks on stdin.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// NormalizeOptions validates opts and resolves the target path to an
// absolute path so that later gates never depend on the process CWD moving.
func NormalizeOptions(opts Options) (Options, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return Options{}, invalidInputf("--path is required: destination file for the generated secret")
	}
	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return Options{}, invalidInputf("cannot resolve path %q: %v", opts.Path, err)
	}
	opts.Path = abs

	if opts.Length < 1 {
		return Options{}, invalidInputf("--length must be a positive number of bytes, got %d", opts.Length)
	}
	return opts, nil
}

// ExitCode extracts the semantic exit code from a Run error. Errors outside
// the known taxonomy are filesystem-level failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return ExitInvalidInput
	}
	if errors.Is(err, secret.ErrLengthSelectionAborted) {
		return ExitLengthAborted
	}
	var abort *guard.AbortError
	if errors.As(err, &abort) {
		switch abort.Reason {
		case guard.MissingParentDeclined:
			return ExitMissingParentDeclined
		case guard.OverwriteDeclined:
			return ExitOverwriteDeclined
		}
	}
	return ExitFilesystemError
}
