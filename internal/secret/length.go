// Package secret generates the vault password material: a URL-safe random
// token, and the confirmation protocol around weaker-than-recommended
// entropy requests.
package secret

import (
	"errors"
	"fmt"

	"vaultpass/internal/prompt"
)

// RecommendedLength is the default number of random bytes fed into Token.
// Requests below it trigger the interactive confirmation protocol.
const RecommendedLength = 128

// ErrLengthSelectionAborted reports that the user declined both the short
// length and the recommended fallback.
var ErrLengthSelectionAborted = errors.New("secret length selection aborted by user")

// ResolveLength applies the short-length confirmation policy.
//
// requested >= recommended passes through with no prompt. A shorter request
// is confirmed first (default yes); on decline, a fallback to recommended is
// offered (default yes); declining both returns ErrLengthSelectionAborted.
// The result is always exactly requested or recommended, and each question
// is asked at most once.
func ResolveLength(requested, recommended int, c prompt.Confirmer) (int, error) {
	if requested >= recommended {
		return requested, nil
	}

	keep, err := c.Confirm(fmt.Sprintf(
		"Your selected secret length is %d bytes. The recommended length is %d bytes. Do you want to continue with length %d?",
		requested, recommended, requested), prompt.DefaultYes)
	if err != nil {
		return 0, err
	}
	if prompt.Accepted(keep, prompt.DefaultYes) {
		return requested, nil
	}

	fallback, err := c.Confirm(fmt.Sprintf(
		"Do you want to use the recommended default length (%d) instead?",
		recommended), prompt.DefaultYes)
	if err != nil {
		return 0, err
	}
	if prompt.Accepted(fallback, prompt.DefaultYes) {
		return recommended, nil
	}
	return 0, ErrLengthSelectionAborted
}
