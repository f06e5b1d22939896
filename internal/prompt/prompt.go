// Package prompt provides the single yes/no confirmation primitive used by
// every interactive gate in vaultpass.
//
// A confirmation has three observable outcomes (yes, no, or "just pressed
// enter"), which are resolved against the question's default polarity. Keeping
// the tri-state explicit means default handling lives in exactly one place
// instead of scattered empty-string checks at every call site.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Polarity is the default answer of a yes/no question, shown capitalized in
// the prompt hint.
type Polarity int

const (
	DefaultYes Polarity = iota
	DefaultNo
)

// Hint renders the bracketless answer hint appended to every question.
func (p Polarity) Hint() string {
	if p == DefaultNo {
		return "y/N"
	}
	return "Y/n"
}

// Outcome is the semantic result of one confirmation.
type Outcome int

const (
	// AnsweredDefault means the user submitted an empty response and the
	// question's default polarity decides.
	AnsweredDefault Outcome = iota
	AnsweredYes
	AnsweredNo
)

func (o Outcome) String() string {
	switch o {
	case AnsweredYes:
		return "yes"
	case AnsweredNo:
		return "no"
	default:
		return "default"
	}
}

// Accepted resolves an outcome against the question's default polarity.
func Accepted(o Outcome, def Polarity) bool {
	switch o {
	case AnsweredYes:
		return true
	case AnsweredNo:
		return false
	default:
		return def == DefaultYes
	}
}

// Confirmer asks a single yes/no question and reports the tri-state outcome.
// Each question is asked exactly once; there is no retry loop.
type Confirmer interface {
	Confirm(question string, def Polarity) (Outcome, error)
}

// ParseResponse maps one raw response line to an Outcome.
//
// Only the trailing line break is stripped. An empty line is AnsweredDefault;
// a case-insensitive "y" or "n" is AnsweredYes or AnsweredNo. Any other input
// is silently treated as AnsweredNo rather than rejected and re-prompted.
// That leniency is the documented contract, though it is a UX choice worth
// revisiting rather than a load-bearing invariant.
func ParseResponse(line string) Outcome {
	switch strings.ToLower(strings.TrimRight(line, "\r\n")) {
	case "":
		return AnsweredDefault
	case "y":
		return AnsweredYes
	case "n":
		return AnsweredNo
	default:
		return AnsweredNo
	}
}

// Terminal is the interactive Confirmer. It writes the question followed by
// the polarity hint ("Y/n" or "y/N") and blocks for one line of input.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm renders "<question> Y/n: " and reads a single response line.
// The exact prompt format is a compatibility contract with provisioning
// scripts that drive this tool over a pipe.
func (t *Terminal) Confirm(question string, def Polarity) (Outcome, error) {
	if _, err := fmt.Fprintf(t.out, "%s %s: ", question, def.Hint()); err != nil {
		return AnsweredNo, fmt.Errorf("write confirmation prompt: %w", err)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return AnsweredNo, fmt.Errorf("read confirmation response: %w", err)
	}
	// A final line without a trailing newline (EOF mid-line) still counts.
	return ParseResponse(line), nil
}

// Always is a non-interactive Confirmer that answers every question with the
// same outcome. Always(AnsweredDefault) accepts whatever each gate defaults
// to, which is what unattended provisioning wants.
type Always Outcome

func (a Always) Confirm(question string, def Polarity) (Outcome, error) {
	return Outcome(a), nil
}
