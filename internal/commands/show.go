package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VeteranWolfy/track-finance/internal/ledger"
	"github.com/VeteranWolfy/track-finance/internal/model"
)

func newShowCommand() *cobra.Command {
	var month string
	var category string

	cmd := &cobra.Command{
		Use:   "show <ledger.xlsx>",
		Short: "Print stored transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], month, category)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", `filter by month sheet, e.g. "March 2024"`)
	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	return cmd
}

func runShow(path, month, category string) error {
	if category != "" && !model.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}

	txns, err := ledger.NewStore(path).Load()
	if err != nil {
		return err
	}

	shown := 0
	for _, t := range txns {
		if month != "" && ledger.SheetName(t.Date) != month {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		fmt.Printf("%s  %-32s  £%s  %s\n", t.DateISO(), t.Category, t.Cost.StringFixed(2), t.Description)
		shown++
	}

	if shown == 0 {
		fmt.Println("No matching transactions.")
	}
	return nil
}
