package commands

import (
	"github.com/spf13/cobra"

	"github.com/Ikhwanand/diary-tui/pkg/api"
	"github.com/Ikhwanand/diary-tui/pkg/config"
	"github.com/Ikhwanand/diary-tui/pkg/engine"
	"github.com/Ikhwanand/diary-tui/pkg/picker"
	"github.com/Ikhwanand/diary-tui/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
diary ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := api.New(cfg.BaseURL, cfg.Timeout)
			eng := engine.New(client, picker.Local{})
			return tui.Run(eng)
		},
	}

	topLevel.AddCommand(cmd)
}
