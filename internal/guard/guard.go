// Package guard decides whether a target file path may be written.
//
// Authorization is an explicit state machine over two independent gates
// evaluated in fixed order: the parent-existence gate, then the overwrite
// gate. Each gate asks its confirmation at most once, and a declined gate
// aborts before any filesystem mutation the gate had not already authorized.
package guard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"vaultpass/internal/prompt"
)

// AbortReason identifies which gate the user declined.
type AbortReason int

const (
	MissingParentDeclined AbortReason = iota + 1
	OverwriteDeclined
)

func (r AbortReason) String() string {
	switch r {
	case MissingParentDeclined:
		return "missing parent creation declined"
	case OverwriteDeclined:
		return "overwrite declined"
	default:
		return "unknown"
	}
}

// AbortError reports that the user declined a confirmation a gate required.
// No file or directory has been created when it is returned.
type AbortError struct {
	Reason AbortReason
	Path   string
}

func (e *AbortError) Error() string {
	switch e.Reason {
	case MissingParentDeclined:
		return fmt.Sprintf("cannot create file without parent directories, user aborted: %s", e.Path)
	case OverwriteDeclined:
		return fmt.Sprintf("user declined to overwrite the existing file: %s", e.Path)
	default:
		return fmt.Sprintf("path authorization aborted: %s", e.Path)
	}
}

// gateState tracks progress through the authorization machine. States only
// advance; there is no transition back from a checked gate.
type gateState int

const (
	stateStart gateState = iota
	stateParentChecked
	stateOverwriteChecked
)

// Authorize reports whether path may be written.
//
// A nil return guarantees the parent directory exists and, if the file
// already existed, that overwriting it was authorized by flag or by
// confirmation. A *AbortError return guarantees nothing was created and an
// existing file is untouched. Any other error is a filesystem failure.
func Authorize(path string, overwrite, createParents bool, c prompt.Confirmer) error {
	for st := stateStart; ; {
		switch st {
		case stateStart:
			if err := parentGate(path, createParents, c); err != nil {
				return err
			}
			st = stateParentChecked
		case stateParentChecked:
			if err := overwriteGate(path, overwrite, c); err != nil {
				return err
			}
			st = stateOverwriteChecked
		case stateOverwriteChecked:
			return nil
		}
	}
}

// parentGate ensures the parent directory of path exists, creating the full
// chain when authorized. Creation is idempotent: an already-existing parent
// is never an error, regardless of createParents.
func parentGate(path string, createParents bool, c prompt.Confirmer) error {
	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat parent directory %s: %w", parent, err)
	}

	if !createParents {
		outcome, err := c.Confirm(fmt.Sprintf(
			"The parent directory does not exist: %s. Create it now?", parent),
			prompt.DefaultYes)
		if err != nil {
			return err
		}
		if !prompt.Accepted(outcome, prompt.DefaultYes) {
			return &AbortError{Reason: MissingParentDeclined, Path: parent}
		}
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create parent directories %s: %w", parent, err)
	}
	return nil
}

// overwriteGate checks the target file itself. A file that does not exist
// needs no authorization. Overwriting defaults to No: replacing an existing
// secret is destructive and must never be the silent outcome.
func overwriteGate(path string, overwrite bool, c prompt.Confirmer) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("stat target file %s: %w", path, err)
	}

	if overwrite {
		return nil
	}
	outcome, err := c.Confirm(fmt.Sprintf(
		"File already exists: %s. Overwrite?", path), prompt.DefaultNo)
	if err != nil {
		return err
	}
	if !prompt.Accepted(outcome, prompt.DefaultNo) {
		return &AbortError{Reason: OverwriteDeclined, Path: path}
	}
	return nil
}
