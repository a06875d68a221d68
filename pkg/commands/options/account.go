// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// AccountOptions captures credentials for one-shot commands that talk
// to the backend without the interactive UI.
type AccountOptions struct {
	Username string
	Password string
	Token    string
}

// AddAccountArgs wires credential flags on the provided command.
func AddAccountArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Username to login with.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Password to login with.")
	cmd.Flags().StringVarP(&o.Token, "token", "t", "",
		"API token, overrides username/password. Defaults to DIARY_TOKEN.")
}

// Resolve validates the flags and fills the token from the environment
// when no explicit credentials were given.
func (o *AccountOptions) Resolve() error {
	if o.Token == "" {
		o.Token = os.Getenv("DIARY_TOKEN")
	}
	if o.Token != "" {
		return nil
	}
	if o.Username == "" || o.Password == "" {
		return errors.New("either --token, DIARY_TOKEN, or --username and --password are required")
	}
	return nil
}
