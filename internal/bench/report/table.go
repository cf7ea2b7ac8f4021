package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Expression Conformance Benchmark ===\n")
	fmt.Fprintf(tw, "run %s, %d warmup + %d measured runs per case\n", r.Meta.RunID, r.Config.WarmupRuns, r.Config.Runs)

	for _, jr := range r.Jobs {
		fmt.Fprintf(tw, "\n--- Job: %s (suite %s) ---\n\n", jr.JobName, jr.SuiteName)
		writeAggregatedTable(tw, &jr)
		writeLatencyTable(tw, &jr)
		writeFailureTable(tw, &jr)
		writeDisagreements(tw, &jr)
	}

	tw.Flush()
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func writeAggregatedTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Results\n\n")
	writeHeader(tw, []string{"Engine", "Cases", "Passed", "Failed", "Unreachable", "Pass rate"})

	for _, agg := range jr.Aggregated {
		row := []string{
			agg.EngineName,
			fmt.Sprintf("%d", agg.CaseCount),
			fmt.Sprintf("%d", agg.Passed),
			fmt.Sprintf("%d", agg.Failed),
			fmt.Sprintf("%d", agg.ErrorCount),
			fmt.Sprintf("%.2f%%", agg.PassRate),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeLatencyTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Latency (all cases)\n\n")
	writeHeader(tw, []string{"Engine", "Min", "p50", "p90", "p95", "p99", "Max", "Mean", "Stddev", "Samples", "Evals/s"})

	for _, agg := range jr.Aggregated {
		s := agg.Latency
		row := []string{
			agg.EngineName,
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P90()),
			fmtDuration(s.P95()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmtDuration(s.Stddev),
			fmt.Sprintf("%d", s.SampleCount),
			fmt.Sprintf("%.1f", agg.Throughput),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeFailureTable(tw *tabwriter.Writer, jr *JobReport) {
	var failed []Entry
	for _, e := range jr.PerCase {
		if !e.Passed {
			failed = append(failed, e)
		}
	}
	if len(failed) == 0 {
		fmt.Fprintf(tw, "All cases passed\n\n")
		return
	}

	fmt.Fprintf(tw, "Failures\n\n")
	writeHeader(tw, []string{"Case", "Engine", "Expression", "Expected", "Actual", "Detail"})

	for _, e := range failed {
		row := []string{
			e.CaseID,
			e.EngineName,
			fmtExpression(e.Expression),
			e.Expected,
			e.Actual,
			e.Mismatch,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeDisagreements(tw *tabwriter.Writer, jr *JobReport) {
	if len(jr.Disagreements) == 0 {
		return
	}
	fmt.Fprintf(tw, "Engines disagree on: %s\n\n", strings.Join(jr.Disagreements, ", "))
}

func fmtExpression(expr string) string {
	if expr == "" {
		return `""`
	}
	return expr
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
