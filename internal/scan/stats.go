package scan

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	// Total is the batch size reported by discovery.
	Total int
	// Processed counts documents that produced a result.
	Processed int
	// Found counts results with StatusCodeFound.
	Found int
	// Failed counts every other result.
	Failed int
	// Cancelled is set when the run stopped early on a cancellation signal.
	// Accumulated results up to that point are still reported.
	Cancelled bool
	// ReportPath is where the CSV report landed; empty when report writing
	// was skipped or failed.
	ReportPath string
}

// ProgressFunc is invoked after each document's classification with the
// number of items processed so far and the batch total. Under parallel
// execution calls are serialized and processed is strictly increasing.
type ProgressFunc func(processed, total int)

// SummaryFunc is invoked exactly once, after every item has produced a
// result (or the run was cancelled), with the final counters.
type SummaryFunc func(total, succeeded, failed int)
