package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ikhwanand/diary-tui/pkg/api"
	"github.com/Ikhwanand/diary-tui/pkg/commands/options"
	"github.com/Ikhwanand/diary-tui/pkg/config"
	"github.com/Ikhwanand/diary-tui/pkg/printers"
)

func addList(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list your diaries without opening the UI",
		Example: `
diary list --token $DIARY_TOKEN
diary list -u alice -p secret --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ao.Resolve(); err != nil {
				return oo.HandleError(err)
			}

			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			client := api.New(cfg.BaseURL, cfg.Timeout)

			ctx := context.Background()
			token := ao.Token
			if token == "" {
				token, err = client.Login(ctx, ao.Username, ao.Password)
				if err != nil {
					return oo.HandleError(err)
				}
			}

			entries, err := client.List(ctx, token)
			if err != nil {
				return oo.HandleError(err)
			}

			if oo.JSON {
				b, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.NewLine()
			pp.TitleWithCount("My Diaries", len(entries))
			pp.Entries(entries...)
			return nil
		},
	}

	options.AddAccountArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
