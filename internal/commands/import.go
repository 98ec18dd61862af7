package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VeteranWolfy/track-finance/internal/config"
	"github.com/VeteranWolfy/track-finance/internal/dedupe"
	"github.com/VeteranWolfy/track-finance/internal/extract"
	"github.com/VeteranWolfy/track-finance/internal/importlog"
	"github.com/VeteranWolfy/track-finance/internal/ledger"
	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/normalize"
	"github.com/VeteranWolfy/track-finance/internal/session"
	"github.com/VeteranWolfy/track-finance/internal/source"
)

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a statement file, categorize it, and append to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			return runImport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ledgerPath, "ledger", "", "ledger workbook to filter duplicates against and append to")
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "categorize with pattern suggestions instead of interactively")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "format-profile configuration file")
	cmd.Flags().StringVar(&opts.profileName, "profile", "", "force a named input-format profile")

	return cmd
}

type importOptions struct {
	file        string
	ledgerPath  string
	configPath  string
	profileName string
	auto        bool
}

func runImport(opts importOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	input, err := source.DefaultRegistry().Read(opts.file)
	if err != nil {
		return err
	}

	candidates, skipCount, err := extractInput(cfg, input, opts.profileName)
	if err != nil {
		return err
	}
	log.Info("extracted transactions", "file", opts.file, "count", len(candidates), "skipped", skipCount)
	if len(candidates) == 0 {
		log.Warn("no transactions recognized", "file", opts.file)
		return nil
	}

	var existing []model.Transaction
	if opts.ledgerPath != "" {
		existing, err = ledger.NewStore(opts.ledgerPath).Load()
		if err != nil {
			return err
		}
	}
	fresh, duplicates := dedupe.Filter(candidates, existing)
	if duplicates > 0 {
		log.Info("duplicate transactions skipped", "count", duplicates)
	}
	if len(fresh) == 0 {
		log.Info("all transactions are already in the ledger")
		return nil
	}

	sess := session.New(fresh)
	var categorized []model.Transaction
	if opts.auto {
		categorized = sess.AutoCategorize()
	} else {
		if err := sess.Run(os.Stdout); err != nil {
			return err
		}
		categorized = sess.Output
	}
	if len(categorized) == 0 {
		log.Warn("nothing categorized, ledger unchanged")
		return nil
	}

	if opts.ledgerPath == "" {
		printTransactions(categorized)
		log.Info("no --ledger given, nothing persisted")
		return nil
	}

	if err := ledger.NewStore(opts.ledgerPath).Append(categorized); err != nil {
		return err
	}

	entry := importlog.Entry{
		Timestamp:  time.Now(),
		SourceFile: opts.file,
		Extracted:  len(candidates),
		Skipped:    skipCount,
		Duplicates: duplicates,
		Appended:   len(categorized),
	}
	if err := importlog.Append(opts.ledgerPath, entry); err != nil {
		log.Warn("failed to write import log", "err", err)
	}

	log.Info("ledger updated", "ledger", opts.ledgerPath, "appended", len(categorized))
	return nil
}

// extractInput converts raw source material into candidate transactions.
// Headed tables go through the column normalizer; when that cannot find the
// required columns, content-based column classification is tried before the
// import is abandoned.
func extractInput(cfg *config.Config, input source.Input, profileName string) ([]model.Transaction, int, error) {
	if input.Kind == source.KindText {
		results := extract.FromLines(input.Lines)
		logSkips(results)
		return extract.Transactions(results), extract.CountSkipped(results), nil
	}

	profile, err := resolveProfile(cfg, input, profileName)
	if err != nil {
		return nil, 0, err
	}

	txns, skippedRows, err := normalize.Normalize(input.Table, profile)
	var missing *normalize.MissingColumnsError
	if errors.As(err, &missing) {
		log.Debug("headers not recognized, classifying columns by content", "missing", missing.Columns)
		results, classifyErr := extract.FromTable(input.Table)
		if classifyErr != nil {
			return nil, 0, fmt.Errorf("%v; column classification fallback: %w", missing, classifyErr)
		}
		logSkips(results)
		classified, dropped := normalize.ApplyProfile(extract.Transactions(results), profile)
		if dropped > 0 {
			log.Debug("rows excluded by profile", "count", dropped)
		}
		return classified, extract.CountSkipped(results) + dropped, nil
	}
	if err != nil {
		return nil, 0, err
	}
	if skippedRows > 0 {
		log.Debug("rows skipped during normalization", "count", skippedRows)
	}
	return txns, skippedRows, nil
}

func resolveProfile(cfg *config.Config, input source.Input, profileName string) (*normalize.Profile, error) {
	if profileName != "" {
		p := cfg.Find(profileName)
		if p == nil {
			return nil, fmt.Errorf("unknown profile %q", profileName)
		}
		return p, nil
	}
	p := cfg.MatchProfile(input.Table.Headers)
	if p != nil {
		log.Debug("matched input-format profile", "profile", p.Name)
	}
	return p, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func logSkips(results []extract.Result) {
	for _, r := range results {
		switch r.Status {
		case extract.StatusSkipped:
			log.Debug("skipped line", "reason", r.Reason)
		case extract.StatusFailed:
			log.Debug("failed line", "reason", r.Reason)
		}
	}
}

func printTransactions(txns []model.Transaction) {
	for _, t := range txns {
		fmt.Printf("%s  %-12s  £%s  %s\n", t.DateISO(), t.Category, t.Cost.StringFixed(2), t.Description)
	}
}
