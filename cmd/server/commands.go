package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/payweek"
	"github.com/rpggio/timewizard/internal/domain/summary"
	"github.com/spf13/cobra"
)

// withApp opens the configured database for the duration of fn.
func (c *cli) withApp(ctx context.Context, fn func(*app) error) error {
	a, err := openApp(ctx, c.cfg.DB.Path, c.logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func (c *cli) weekInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week-info <work-date>",
		Short: "Show the week ending and pay-week status of a date",
		Example: `  timewizard week-info 2025-11-17
  timewizard week-info 2025-11-22`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workDate, err := payweek.ParseDate(args[0])
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(a *app) error {
				anchor, err := a.settings.Anchor(cmd.Context())
				if err != nil {
					return err
				}
				info := payweek.Info(workDate, anchor)

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Week ending:"), titleStyle.Render(info.WeekEndingDate))
				fmt.Fprintf(out, "%s %s to %s\n", labelStyle.Render("Week:"), info.WeekStart, info.WeekEnd)
				fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Pay week:"), yesNo(info.IsPayWeek))
				return nil
			})
		},
	}
}

func (c *cli) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "summary <week-ending>",
		Short:   "Print the weekly summary for a week-ending Saturday",
		Example: `  timewizard summary 2025-11-22`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				w, err := a.summaries.Weekly(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				renderWeekly(cmd.OutOrStdout(), w)
				return nil
			})
		},
	}
}

func renderWeekly(out io.Writer, w *summary.Weekly) {
	header := "Week ending " + w.WeekEndingDate
	if w.IsPayWeek {
		header += " " + payStyle.Render("(pay week)")
	}
	fmt.Fprintln(out, titleStyle.Render(header))

	if w.TotalHours == 0 {
		fmt.Fprintln(out, labelStyle.Render("No hours recorded."))
		return
	}

	fmt.Fprintln(out, labelStyle.Render("By day:"))
	days := make([]string, 0, len(w.DailyTotals))
	for day := range w.DailyTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		writeTotals(out, day, w.DailyTotals[day])
	}

	fmt.Fprintln(out, labelStyle.Render("By line:"))
	for _, code := range w.LinesUsed {
		writeTotals(out, code, w.LineTotals[code])
	}

	fmt.Fprintln(out, totalStyle.Render(fmt.Sprintf("Total: ST %d  OT %d  = %d", w.TotalST, w.TotalOT, w.TotalHours)))
}

func writeTotals(out io.Writer, key string, t summary.Totals) {
	fmt.Fprintf(out, "  %-12s ST %3d  OT %3d  = %3d\n", key, t.ST, t.OT, t.Total)
}

func yesNo(b bool) string {
	if b {
		return payStyle.Render("yes")
	}
	return "no"
}

func (c *cli) exportCmd() *cobra.Command {
	var start, end, format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export lines, settings, entries, and notes",
		Long: `Export the full state as a backup document.

Entries and notes are restricted to [--start, --end] only when both are given;
lines and settings are always exported in full.`,
		Example: `  timewizard export > backup.json
  timewizard export --format yaml --out backup.yaml
  timewizard export --start 2025-11-01 --end 2025-11-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := backup.ParseFormat(format)
			if err != nil {
				return err
			}
			return c.withApp(cmd.Context(), func(a *app) error {
				doc, err := a.backups.Export(cmd.Context(), start, end)
				if err != nil {
					return err
				}

				if outPath == "" {
					if err := backup.Encode(cmd.OutOrStdout(), f, doc); err != nil {
						return fmt.Errorf("encode backup: %w", err)
					}
					return nil
				}

				if err := writeBackupFile(outPath, f, doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries, %d line codes, %d settings, %d notes to %s\n",
					len(doc.Entries), len(doc.LineCodes), len(doc.Settings), len(doc.Notes), outPath)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first work date to export (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last work date to export (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "format", "json", "document format: json, yaml, or toml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a backup document",
		Long: `Import a backup document. Every record is written by natural key in one
transaction: either the whole document is applied or nothing is.

The format is taken from --format, else from a .json, .yaml, .yml, or .toml
extension. Any other file is read as JSON.`,
		Example: `  timewizard import backup.json
  timewizard import backup.txt --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := importFormat(format, path)
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer file.Close()

			doc, err := backup.Decode(file, f)
			if err != nil {
				return err
			}

			return c.withApp(cmd.Context(), func(a *app) error {
				res, err := a.backups.Import(cmd.Context(), doc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d line codes, %d settings, %d notes\n",
					res.Message, res.Entries, res.LineCodes, res.Settings, res.Notes)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "document format: json, yaml, or toml")
	return cmd
}

// writeBackupFile encodes doc into a new file at path. A failed close is
// reported since it can drop buffered data.
func writeBackupFile(path string, f backup.Format, doc *backup.Document) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := backup.Encode(file, f, doc); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// importFormat resolves the document format of an import. An explicit flag
// must name a known format; otherwise the extension is used when it is one.
func importFormat(flag, path string) (backup.Format, error) {
	if flag != "" {
		return backup.ParseFormat(flag)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := backup.ParseFormat(ext); err == nil {
		return f, nil
	}
	return backup.FormatJSON, nil
}
