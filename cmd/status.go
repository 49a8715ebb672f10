package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"extension-monitor/core/config"
	"extension-monitor/core/feed"
	"extension-monitor/core/logger"
	"extension-monitor/core/reconcile"
	"extension-monitor/feature/dashboard"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch the store feed once and print the reconciled status",
	Long:  `Fetches the upstream feed, reconciles every store against the submission registry and prints one table per extension. Use --json for the full report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		extension, _ := cmd.Flags().GetString("extension")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		client, err := feed.NewClient(cfg.Feed)
		if err != nil {
			return fmt.Errorf("failed to create feed client: %w", err)
		}

		svc := dashboard.NewService(client, cfg.Feed.SubmissionsKey, logg)
		report, err := svc.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("store feed unavailable: %w", err)
		}

		if extension != "" {
			only, ok := report.Only(extension)
			if !ok {
				return fmt.Errorf("%w: %s", dashboard.ErrExtensionNotFound, extension)
			}
			report = &only
		}

		logg.Debug("Status fetched",
			zap.Int("groups", report.Summary.Groups),
			zap.Int("mismatch", report.Summary.Mismatch),
			zap.Int("pending", report.Summary.Pending),
		)

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		return renderReport(out, newStatusStyles(lipgloss.NewRenderer(out)), report, time.Now())
	},
}

// Row label colors, Catppuccin Mocha accents.
var (
	colorSuccess = lipgloss.Color("#a6e3a1")
	colorWarning = lipgloss.Color("#fab387")
	colorDanger  = lipgloss.Color("#f38ba8")
)

// statusStyles colors a row label by its emphasis.
type statusStyles map[reconcile.Emphasis]lipgloss.Style

func newStatusStyles(r *lipgloss.Renderer) statusStyles {
	return statusStyles{
		reconcile.EmphasisSuccess: r.NewStyle().Foreground(colorSuccess),
		reconcile.EmphasisWarning: r.NewStyle().Foreground(colorWarning),
		reconcile.EmphasisDanger:  r.NewStyle().Foreground(colorDanger).Bold(true),
	}
}

func (s statusStyles) render(st reconcile.RowStatus) string {
	style, ok := s[st.Emphasis]
	if !ok {
		return string(st.Label)
	}
	return style.Render(string(st.Label))
}

// renderReport prints one table per extension group followed by the summary.
// STATUS is the last column so escape sequences do not skew the alignment.
func renderReport(w io.Writer, styles statusStyles, report *reconcile.Report, now time.Time) error {
	for _, g := range report.Groups {
		fmt.Fprintf(w, "\n=== %s [%s] %s ===\n", g.Name, strings.ToUpper(string(g.Status.Status)), g.Status.Message)
		fmt.Fprintf(w, "Latest: %s  Consistent: %t", g.LatestVersion, g.IsConsistent)
		if g.HasSubmission() {
			fmt.Fprintf(w, "  Submitted: %s", g.SubmittedVersion)
			if g.ReleaseDate != "" {
				fmt.Fprintf(w, " (%s)", g.ReleaseDate)
			}
		}
		fmt.Fprintln(w)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STORE\tVERSION\tUSERS\tUPDATED\tCHECKED\tSTATUS")
		for _, row := range g.Stores {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				row.Store,
				row.Version,
				humanize.Comma(int64(row.Users)),
				row.LastUpdatedLabel(),
				checkedLabel(row.LastChecked, now),
				styles.render(row.Status),
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	s := report.Summary
	fmt.Fprintln(w, "\n=== Summary ===")
	fmt.Fprintf(w, "Extensions: %d (live %d, pending %d, mismatch %d)\n", s.Groups, s.Live, s.Pending, s.Mismatch)
	fmt.Fprintf(w, "Store listings: %d (pending %d, mismatch %d)\n", s.Stores, s.RowsPending, s.RowsMismatch)
	return nil
}

func checkedLabel(t *time.Time, now time.Time) string {
	if t == nil {
		return reconcile.UnknownLabel
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("json", false, "Print the full report as JSON")
	statusCmd.Flags().StringP("extension", "e", "", "Only show one extension (canonical name or slug)")
}
