package conformance

import (
	"fmt"
	"io"

	"uconn.dev/tracecheck/tracecid"
)

// Run is the full engine pass: scan the corpus, check it, and stamp the
// report with the scenario name and the trace fingerprint. An empty corpus
// is a valid, failing input: it yields an ingestion-error report without
// running grammar checks.
func Run(scenario string, c Corpus, g *Grammar, opts Options) Report {
	if c.Empty() {
		return IngestFailure(scenario, newError(KindIngest, "TRC-ING-002", "trace is empty"))
	}
	rep := Check(g, Scan(c, g), opts)
	rep.Scenario = scenario
	rep.TraceCID = tracecid.Fingerprint([]byte(c.Text()))
	return rep
}

// IngestFailure builds the report for a trace that could not be obtained:
// a single top-level Error outcome, no further checks attempted.
func IngestFailure(scenario string, err error) Report {
	return Report{
		Scenario: scenario,
		Outcomes: []Outcome{{
			ID:       "ingest",
			Severity: SeverityError,
			Message:  err.Error(),
		}},
	}
}

// Emit renders the report: one line per outcome in checker order, then a
// summary line. Output is deterministic given the same report. The returned
// exit code is 0 iff the overall result is success.
//
// Line prefixes follow the lesson checkers: v satisfied, x error,
// w warning, i informational.
func Emit(w io.Writer, r Report) int {
	if r.Scenario != "" {
		fmt.Fprintf(w, "i scenario: %s\n", r.Scenario)
	}
	if r.TraceCID != "" {
		fmt.Fprintf(w, "i trace: %s\n", r.TraceCID)
	}
	for _, o := range r.Outcomes {
		fmt.Fprintf(w, "%s %s: %s\n", mark(o), o.ID, o.Message)
	}
	if r.Pass {
		fmt.Fprintln(w, "v result: PASS")
		return 0
	}
	fmt.Fprintln(w, "x result: FAIL")
	return 1
}

func mark(o Outcome) string {
	if o.Satisfied {
		return "v"
	}
	if o.Severity == SeverityWarning {
		return "w"
	}
	return "x"
}
