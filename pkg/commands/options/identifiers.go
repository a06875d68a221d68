package options

import "github.com/spf13/cobra"

// IDOptions controls whether entry ids are shown.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the show-ids flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show entry ids.")
}
