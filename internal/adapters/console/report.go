package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/engine/verify"
)

// maxPreview caps every report list; the full counts stay visible in the
// summary line.
const maxPreview = 10

// Reporter renders operation results as plain indented text with colored
// status glyphs.
type Reporter struct {
	w   io.Writer
	out *termenv.Output
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, out: NewOutput(w)}
}

func (r *Reporter) color(s string, c termenv.Color) string {
	return r.out.String(s).Foreground(c).String()
}

// list prints up to maxPreview entries, then a "+N more" line.
func (r *Reporter) list(entries []string) {
	shown := entries
	if len(shown) > maxPreview {
		shown = shown[:maxPreview]
	}
	for _, e := range shown {
		fmt.Fprintf(r.w, "  %s\n", e)
	}
	if rest := len(entries) - len(shown); rest > 0 {
		fmt.Fprintf(r.w, "  +%d more\n", rest)
	}
}

// Verify renders a verification report.
func (r *Reporter) Verify(report *verify.Report) {
	fmt.Fprintf(r.w, "Lock status: %d ok, %d mismatched, %d missing, %d extra\n",
		report.OK, len(report.Mismatched), len(report.Missing), len(report.Extra))

	if len(report.Mismatched) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color("Version mismatches:", termenv.ANSIYellow))
		entries := make([]string, len(report.Mismatched))
		for i, m := range report.Mismatched {
			entries[i] = m.String()
		}
		r.list(entries)
	}
	if len(report.Missing) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color("Missing packages:", termenv.ANSIRed))
		r.list(report.Missing)
	}
	if len(report.Extra) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color("Not in lock:", termenv.ANSIYellow))
		r.list(report.Extra)
	}
	for _, w := range report.IntegrityWarnings {
		fmt.Fprintf(r.w, "%s %s\n", r.color("warning:", termenv.ANSIYellow), w)
	}
	if report.Clean() {
		fmt.Fprintf(r.w, "%s\n", r.color("System matches the lock file.", termenv.ANSIGreen))
	}
}

// Diff renders a lock-versus-current difference.
func (r *Reporter) Diff(report *verify.DiffReport) {
	if report.Empty() {
		fmt.Fprintln(r.w, "No changes since the lock file was generated.")
		return
	}
	if len(report.Added) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color(fmt.Sprintf("Added (%d):", len(report.Added)), termenv.ANSIGreen))
		r.list(report.Added)
	}
	if len(report.Removed) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color(fmt.Sprintf("Removed (%d):", len(report.Removed)), termenv.ANSIRed))
		r.list(report.Removed)
	}
	if len(report.Changed) > 0 {
		fmt.Fprintf(r.w, "%s\n", r.color(fmt.Sprintf("Changed (%d):", len(report.Changed)), termenv.ANSIYellow))
		entries := make([]string, len(report.Changed))
		for i, m := range report.Changed {
			entries[i] = m.String()
		}
		r.list(entries)
	}
}

// Stats renders the classification summary.
func (r *Reporter) Stats(s domain.Stats) {
	fmt.Fprintf(r.w, "Installed packages: %d\n", s.TotalInstalled)
	fmt.Fprintf(r.w, "  default: %d\n", s.DefaultCount)
	fmt.Fprintf(r.w, "  manual:  %d\n", s.ManualCount)
	fmt.Fprintf(r.w, "  auto:    %d\n", s.AutoCount)
	fmt.Fprintf(r.w, "Manual install size: %s\n", humanSize(s.ManualSizeBytes))

	fmt.Fprintln(r.w, "Manual packages by category:")
	for _, c := range domain.Categories {
		if n := s.ByCategory[c]; n > 0 {
			fmt.Fprintf(r.w, "  %-12s %d\n", c, n)
		}
	}
}

func humanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Tree renders the manual set grouped by category, with the dependency
// count those packages pulled in.
func (r *Reporter) Tree(manual domain.PackageSet, autoCount int) {
	fmt.Fprintf(r.w, "Manual packages (%d)\n", len(manual))

	groups := domain.GroupByCategory(manual)
	for _, c := range domain.Categories {
		names := groups[c]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "%s %s (%d)\n", "├──", r.color(string(c), termenv.ANSICyan), len(names))
		for _, name := range names {
			fmt.Fprintf(r.w, "│   %s\n", name)
		}
	}
	fmt.Fprintf(r.w, "└── auto dependencies: %d\n", autoCount)
}
