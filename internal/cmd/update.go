package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/notion-query/internal/cmdutil"
	"github.com/salmonumbrella/notion-query/internal/errors"
)

func newUpdateCmd() *cobra.Command {
	var props []string

	cmd := &cobra.Command{
		Use:   "update <page-id>",
		Short: "Update page properties",
		Long: `Update one or more properties of a Notion page.

Each --prop takes a Name=Value pair. Numbers and dates (YYYY-MM-DD or
RFC 3339) are detected automatically; everything else is sent as text.
Repeating a name keeps the last value.

Example:
  nq update abc123 --prop Status=Done
  nq update abc123 --prop Streak=5 --prop "Last Run=2024-03-15"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pageID, err := cmdutil.NormalizeNotionID(args[0])
			if err != nil {
				return err
			}

			if len(props) == 0 {
				return errors.NewUserError(
					"no properties to update",
					"Pass at least one --prop Name=Value",
				)
			}

			properties, err := cmdutil.ParseProperties(props)
			if err != nil {
				return err
			}

			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}

			page, err := client.UpdatePage(ctx, pageID, properties)
			if err != nil {
				return err
			}

			return printerForContext(ctx).Print(page)
		},
	}

	cmd.Flags().StringArrayVar(&props, "prop", nil, "Property to set, as Name=Value (repeatable)")

	return cmd
}
