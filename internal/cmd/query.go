package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/notion-query/internal/cmdutil"
	"github.com/salmonumbrella/notion-query/internal/errors"
	"github.com/salmonumbrella/notion-query/internal/notion"
)

func newQueryCmd() *cobra.Command {
	var (
		filterProp string
		equals     string
		equalsDate string
		sortProp   string
		direction  string
	)

	cmd := &cobra.Command{
		Use:   "query <database-id>",
		Short: "Query a database",
		Long: `Query a Notion database, optionally filtering on a single property
and sorting by a single property.

Filters are equality-only: --equals matches a text value, --equals-date
matches a calendar date (YYYY-MM-DD). Use one or the other.

Example:
  nq query abc123
  nq query abc123 --filter-prop Status --equals Done
  nq query abc123 --filter-prop Due --equals-date 2024-03-15
  nq query abc123 --sort-prop Created --direction descending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			databaseID, err := cmdutil.NormalizeNotionID(args[0])
			if err != nil {
				return err
			}

			filter, err := buildFilter(filterProp, equals, equalsDate)
			if err != nil {
				return err
			}

			sorter, err := buildSorter(sortProp, direction)
			if err != nil {
				return err
			}

			client, err := clientFromContext(ctx)
			if err != nil {
				return err
			}

			result, err := client.QueryDatabase(ctx, databaseID, filter, sorter)
			if err != nil {
				return err
			}

			return printerForContext(ctx).Print(result)
		},
	}

	cmd.Flags().StringVar(&filterProp, "filter-prop", "", "Property name to filter on")
	cmd.Flags().StringVar(&equals, "equals", "", "Text value the filter property must equal")
	cmd.Flags().StringVar(&equalsDate, "equals-date", "", "Date (YYYY-MM-DD) the filter property must equal")
	cmd.Flags().StringVar(&sortProp, "sort-prop", "", "Property name to sort by")
	cmd.Flags().StringVar(&direction, "direction", "ascending", "Sort direction: ascending|descending")

	return cmd
}

func buildFilter(property, equals, equalsDate string) (notion.Filter, error) {
	if property == "" {
		if equals != "" || equalsDate != "" {
			return nil, errors.NewUserError(
				"--equals and --equals-date require --filter-prop",
				"Pass --filter-prop with the property name to filter on",
			)
		}
		return nil, nil
	}
	if equals != "" && equalsDate != "" {
		return nil, errors.NewUserError(
			"--equals and --equals-date are mutually exclusive",
			"Pass only one of --equals or --equals-date",
		)
	}

	var value notion.FilterValue
	if equalsDate != "" {
		t, err := time.Parse("2006-01-02", equalsDate)
		if err != nil {
			return nil, errors.NewUserError(
				fmt.Sprintf("invalid --equals-date %q", equalsDate),
				"Use the YYYY-MM-DD format, e.g. 2024-03-15",
			)
		}
		value = notion.DateOf(t)
	} else {
		value = notion.Text(equals)
	}

	return notion.EqualFilter(property, value)
}

func buildSorter(property, direction string) (notion.Sorter, error) {
	if property == "" {
		return nil, nil
	}
	return notion.SingleSorter(property, notion.SortDirection(direction))
}
