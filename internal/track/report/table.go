// Package report renders resolved tracks for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

func WriteTable(t *track.Track, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Track: %s ===\n\n", t.Name)
	fmt.Fprintf(tw, "%s\n", t.ShortDescription)
	if t.SourceRootURL != "" {
		fmt.Fprintf(tw, "Data: %s\n", t.SourceRootURL)
	}
	fmt.Fprintln(tw)

	writeIndicesTable(tw, t)
	writeOperationsTable(tw, t)
	for i := range t.Challenges {
		writeChallengeTable(tw, &t.Challenges[i])
	}

	tw.Flush()
}

func writeIndicesTable(tw *tabwriter.Writer, t *track.Track) {
	if len(t.Indices) == 0 {
		return
	}
	fmt.Fprintf(tw, "Indices\n\n")
	writeHeader(tw, "Index", "Type", "Documents", "Compressed", "Uncompressed", "Mapping")

	for _, idx := range t.Indices {
		if len(idx.Types) == 0 {
			fmt.Fprintln(tw, strings.Join([]string{idx.Name, "-", "-", "-", "-", "-"}, "\t"))
			continue
		}
		for _, typ := range idx.Types {
			row := []string{
				idx.Name,
				typ.Name,
				fmt.Sprintf("%d", typ.DocumentCount),
				fmtBytes(typ.CompressedBytes),
				fmtBytes(typ.UncompressedBytes),
				typ.MappingFile,
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	fmt.Fprintln(tw)
}

func writeOperationsTable(tw *tabwriter.Writer, t *track.Track) {
	fmt.Fprintf(tw, "Operations\n\n")
	writeHeader(tw, "Operation", "Type", "Params")

	for _, op := range t.Operations {
		fmt.Fprintln(tw, strings.Join([]string{op.Name, op.Type, fmtParams(op.Params)}, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeChallengeTable(tw *tabwriter.Writer, c *track.Challenge) {
	title := c.Name
	if c.Default {
		title += " (default)"
	}
	fmt.Fprintf(tw, "Challenge: %s\n%s\n\n", title, c.Description)
	writeHeader(tw, "#", "Operation", "Clients", "Warmup", "Measurement", "Params")

	for i, entry := range c.Schedule {
		switch e := entry.(type) {
		case *track.Task:
			writeTaskRow(tw, fmt.Sprintf("%d", i+1), e)
		case *track.Parallel:
			fmt.Fprintln(tw, strings.Join([]string{
				fmt.Sprintf("%d", i+1), "parallel", fmt.Sprintf("%d", e.Clients), "-", "-", "-",
			}, "\t"))
			for j, task := range e.Tasks {
				writeTaskRow(tw, fmt.Sprintf("%d.%d", i+1, j+1), task)
			}
		}
	}

	fmt.Fprintln(tw)
}

func writeTaskRow(tw *tabwriter.Writer, pos string, task *track.Task) {
	row := []string{
		pos,
		task.Operation.Name,
		fmt.Sprintf("%d", task.Clients),
		fmtPacing(task.WarmupTimePeriod, task.WarmupIterations),
		fmtPacing(task.TimePeriod, task.Iterations),
		fmtParams(task.Params),
	}
	fmt.Fprintln(tw, strings.Join(row, "\t"))
}

func writeHeader(tw *tabwriter.Writer, header ...string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtPacing(period, iterations *int) string {
	switch {
	case period != nil:
		return fmt.Sprintf("%ds", *period)
	case iterations != nil:
		return fmt.Sprintf("%d iter", *iterations)
	default:
		return "-"
	}
}

func fmtParams(params map[string]any) string {
	if len(params) == 0 {
		return "-"
	}
	data, err := json.Marshal(params)
	if err != nil {
		return "N/A"
	}
	return string(data)
}

func fmtBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
