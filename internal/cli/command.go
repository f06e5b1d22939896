package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"vaultpass/internal/prompt"
	"vaultpass/internal/secret"
)

// Environment defaults, typically pinned by a .env in the provisioning
// checkout. Explicit flags always win.
const (
	EnvPath   = "VAULT_PASS_FILE"
	EnvLength = "VAULT_PASS_LENGTH"
)

const description = "Generate a high-entropy, URL-safe secret and write it to a file for use as an " +
	"Ansible Vault password file. The tool can optionally create missing parent " +
	"directories and confirm before overwriting existing files. You can also choose " +
	"the number of random BYTES used for the secret for stronger entropy. " +
	"Typical workflow: run this once to create ~/.vault_pass and then reference that " +
	"file via --vault-password-file or a matching --vault-id in your Ansible commands."

// NewCommand builds the root vaultpass command. Prompts read from the
// command's input stream and all status output goes to its output stream, so
// tests can drive the full command over buffers.
func NewCommand() *cobra.Command {
	var opts Options
	var showDescription bool

	cmd := &cobra.Command{
		Use:           "vaultpass",
		Short:         "Generate a vault password file",
		Long:          description,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Informational mode: print the description and stop before
			// any validation or prompting.
			if showDescription {
				fmt.Fprintln(cmd.OutOrStdout(), description)
				return nil
			}
			if err := applyEnvDefaults(cmd, &opts); err != nil {
				return err
			}
			confirmer := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err := Run(opts, confirmer, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", secret.RecommendedLength,
		"number of random BYTES for the secret (higher = more entropy); values below the default ask for confirmation")
	cmd.Flags().StringVarP(&opts.Path, "path", "p", "",
		"destination file path for the generated secret (e.g. ~/.vault_pass)")
	cmd.Flags().BoolVarP(&opts.Overwrite, "overwrite", "o", false,
		"overwrite the file if it already exists without asking for confirmation")
	cmd.Flags().BoolVarP(&opts.CreateParents, "create-parents", "c", false,
		"create any missing parent directories of the target path without asking for confirmation")
	cmd.Flags().BoolVarP(&showDescription, "description", "d", false,
		"print the program description and exit")

	// Unknown flags and non-integer --length values are invalid input, not
	// filesystem failures.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return invalidInputf("%v", err)
	})

	return cmd
}

// applyEnvDefaults fills unset flags from the environment. A malformed
// VAULT_PASS_LENGTH is invalid input even when the flag would have been fine.
func applyEnvDefaults(cmd *cobra.Command, opts *Options) error {
	if !cmd.Flags().Changed("length") {
		// An empty value counts as unset: .env files routinely carry
		// placeholder keys with no value.
		if raw := os.Getenv(EnvLength); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return invalidInputf("%s=%q is not an integer", EnvLength, raw)
			}
			opts.Length = n
		}
	}
	if opts.Path == "" {
		opts.Path = os.Getenv(EnvPath)
	}
	return nil
}
