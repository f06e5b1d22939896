package cli

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the full cobra command over buffers, the same surface a user
// hits, with stdin supplying confirmation answers.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommand_DescriptionFlag_EarlyExit(t *testing.T) {
	out, err := execute(t, "", "--description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Ansible Vault password file") {
		t.Fatalf("description not printed: %q", out)
	}
	if got := ExitCode(err); got != ExitSuccess {
		t.Fatalf("exit code = %d, want 0", got)
	}
}

func TestCommand_DescriptionFlag_SkipsPathValidation(t *testing.T) {
	// No --path and an exhausted stdin: only the early exit keeps this from
	// failing validation or blocking on a prompt.
	if _, err := execute(t, "", "-d"); err != nil {
		t.Fatalf("description mode must not validate options: %v", err)
	}
}

func TestCommand_MissingPath_IsInvalidInput(t *testing.T) {
	t.Setenv(EnvPath, "")
	_, err := execute(t, "")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if got := ExitCode(err); got != ExitInvalidInput {
		t.Fatalf("exit code = %d, want %d", got, ExitInvalidInput)
	}
}

func TestCommand_UnknownFlag_IsInvalidInput(t *testing.T) {
	_, err := execute(t, "", "--bogus")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestCommand_NonIntegerLength_IsInvalidInput(t *testing.T) {
	_, err := execute(t, "", "--length", "lots", "--path", "/tmp/vault_pass")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestCommand_DefaultLengthWritesWithoutPrompts(t *testing.T) {
	t.Setenv(EnvLength, "")
	path := filepath.Join(t.TempDir(), "vault_pass")

	out, err := execute(t, "", "--path", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read written secret: %v", readErr)
	}
	if want := base64.RawURLEncoding.EncodedLen(128); len(content) != want {
		t.Fatalf("secret length = %d, want %d", len(content), want)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("destination path not printed: %q", out)
	}
}

func TestCommand_EnvSuppliesPathDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault_pass")
	t.Setenv(EnvPath, path)

	if _, err := execute(t, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("secret not written to env-supplied path: %v", err)
	}
}

func TestCommand_EnvLengthDefault_FlagStillWins(t *testing.T) {
	t.Setenv(EnvLength, "16")
	path := filepath.Join(t.TempDir(), "vault_pass")

	// Explicit flag overrides the env var; 256 >= recommended, no prompt.
	if _, err := execute(t, "", "--path", path, "--length", "256"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read written secret: %v", readErr)
	}
	if want := base64.RawURLEncoding.EncodedLen(256); len(content) != want {
		t.Fatalf("flag did not win over env: secret length %d, want %d", len(content), want)
	}
}

func TestCommand_EnvLengthApplied_WhenFlagUnset(t *testing.T) {
	t.Setenv(EnvLength, "256")
	path := filepath.Join(t.TempDir(), "vault_pass")

	if _, err := execute(t, "", "--path", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read written secret: %v", readErr)
	}
	if want := base64.RawURLEncoding.EncodedLen(256); len(content) != want {
		t.Fatalf("env length not applied: secret length %d, want %d", len(content), want)
	}
}

func TestCommand_MalformedEnvLength_IsInvalidInput(t *testing.T) {
	t.Setenv(EnvLength, "many")

	_, err := execute(t, "", "--path", "/tmp/vault_pass")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestCommand_ShortLengthFlag_PromptsOverStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault_pass")

	// Decline the short length, accept the recommended fallback.
	if _, err := execute(t, "n\ny\n", "--path", path, "--length", "8"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read written secret: %v", readErr)
	}
	if want := base64.RawURLEncoding.EncodedLen(128); len(content) != want {
		t.Fatalf("fallback length not used: secret length %d, want %d", len(content), want)
	}
}
