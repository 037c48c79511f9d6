// Command bedcensus runs the extract-reconcile-report pipeline over a
// batch of bed-census workbooks, standing in for the UI layer spec.md
// treats as an external collaborator. Grounded on
// Nirmitee-tech-headless-ehr-fhir/api/cmd/ehr-server/main.go's
// cobra root-command + subcommand layout — the primary teacher
// (sady37-owlBack) is a long-running HTTP service and never needed a CLI
// of its own.
package main

import (
	"bedcensus/internal/config"
	"bedcensus/internal/export"
	"bedcensus/internal/ingest"
	"bedcensus/internal/logger"
	"bedcensus/internal/model"
	"bedcensus/internal/pipeline"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	root := &cobra.Command{
		Use:   "bedcensus",
		Short: "Reconstruct hospitalization timelines from bed-census workbooks",
	}

	root.AddCommand(ingestCmd(cfg, log))
	root.AddCommand(reportCmd(cfg, log))

	if err := root.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// ingestCmd parses one or more workbooks and reconciles them into events,
// printing one line with the total event count and the number of files;
// per-file failures and empty workbooks are only logged.
func ingestCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Parse workbooks and reconcile them into a timeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := runIngest(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}
			fmt.Printf("%d events reconciled from %d file(s)\n", len(events), len(args))
			return nil
		},
	}
}

func reportCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a period report from ingested workbooks",
	}

	var outPath string
	cmd.PersistentFlags().StringVar(&outPath, "out", "", "write the report as an .xlsx file instead of a summary")

	cmd.AddCommand(reportMonthCmd(cfg, log, &outPath))
	cmd.AddCommand(reportQuarterCmd(cfg, log, &outPath))
	cmd.AddCommand(reportYearCmd(cfg, log, &outPath))
	cmd.AddCommand(reportRangeCmd(cfg, log, &outPath))
	return cmd
}

func reportMonthCmd(cfg *config.Config, log *zap.Logger, outPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "month [files...]",
		Short: "One report per calendar month spanning the ingested data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := runIngest(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}
			reports := pipeline.MonthlyReports(events, cfg.MonthlyReportCap)
			return emitReports(reports, *outPath)
		},
	}
}

func reportQuarterCmd(cfg *config.Config, log *zap.Logger, outPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quarter [files...]",
		Short: "One report per calendar quarter spanning the ingested data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := runIngest(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}
			reports := pipeline.QuarterlyReports(events)
			return emitReports(reports, *outPath)
		},
	}
}

func reportYearCmd(cfg *config.Config, log *zap.Logger, outPath *string) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "year [files...]",
		Short: "A single report clamped to one calendar year",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, events, err := runIngest(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}
			r := pipeline.YearlyReport(events, year)
			if r == nil {
				fmt.Println("no events overlap that year")
				return nil
			}
			return emitReports([]*model.Report{r}, *outPath)
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "calendar year")
	return cmd
}

func reportRangeCmd(cfg *config.Config, log *zap.Logger, outPath *string) *cobra.Command {
	var from, to, title string
	cmd := &cobra.Command{
		Use:   "range [files...]",
		Short: "A single report over an arbitrary month range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startMonth, err := time.Parse("2006-01", from)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
			endMonth, err := time.Parse("2006-01", to)
			if err != nil {
				return fmt.Errorf("parse --to: %w", err)
			}

			_, events, err := runIngest(cmd.Context(), cfg, log, args)
			if err != nil {
				return err
			}
			r := pipeline.RangeReport(events, startMonth, endMonth, title)
			if r == nil {
				fmt.Println("no events overlap that range")
				return nil
			}
			return emitReports([]*model.Report{r}, *outPath)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start month, YYYY-MM")
	cmd.Flags().StringVar(&to, "to", "", "end month, YYYY-MM")
	cmd.Flags().StringVar(&title, "title", "", "report title")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

// runIngest wires ingest -> pipeline.Reconcile, the batch-to-timeline half
// of the pipeline every report subcommand shares. Ctrl-C cancels at file
// boundaries (spec.md §5).
func runIngest(parent context.Context, cfg *config.Config, log *zap.Logger, args []string) ([]ingest.FileResult, []*model.Event, error) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := ingest.Files(ctx, args, cfg.IngestConcurrency, log)
	for _, r := range results {
		if r.Err != nil {
			log.Warn("file failed to parse", zap.String("file", r.Path), zap.Error(r.Err))
			continue
		}
		if len(r.Snapshots) == 0 {
			log.Info("workbook produced no snapshots", zap.String("file", r.Path))
		}
	}

	snapshots := ingest.Merge(results)
	events := pipeline.Reconcile(snapshots)
	return results, events, nil
}

func emitReports(reports []*model.Report, outPath string) error {
	if len(reports) == 0 {
		fmt.Println("no reports produced for the requested period")
		return nil
	}

	if outPath == "" {
		for _, r := range reports {
			fmt.Printf("%s: %d patients, %d admissions, %d discharges, avg LOS %.1f\n",
				r.Title, len(r.Patients), r.TotalAdmissions, r.TotalDischarges, r.AvgLOS)
		}
		return nil
	}

	for _, r := range reports {
		data, err := export.Report(r, sheetNameFor(r.Title))
		if err != nil {
			return fmt.Errorf("export report %q: %w", r.Title, err)
		}
		path := outPathFor(outPath, r.Title, len(reports))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

// outPathFor disambiguates --out across multiple reports (e.g. every
// month in a MonthlyReports batch) by suffixing the title onto the base
// name when there is more than one report to write.
func outPathFor(base, title string, count int) string {
	if count <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	return fmt.Sprintf("%s-%s%s", stem, sheetNameFor(title), ext)
}

func sheetNameFor(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch r {
		case ' ', '/', '\\', '*', '?', ':', '[', ']':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	if len(out) > 31 {
		out = out[:31]
	}
	return string(out)
}
