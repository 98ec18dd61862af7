package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VeteranWolfy/track-finance/internal/ledger"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <ledger.xlsx>",
		Short: "Rebuild the Dashboard sheet from the monthly sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ledger.NewStore(args[0]).RebuildDashboard(); err != nil {
				return err
			}
			log.Info("dashboard rebuilt", "ledger", args[0])
			return nil
		},
	}
}
