package conformance

import (
	"fmt"
	"sort"
	"strings"
)

// Severity classifies an unsatisfied outcome. Warnings never affect the
// overall result.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

// Outcome is one expectation's result. Message always carries the literal
// captured values involved so a failure is reproducible from the report.
type Outcome struct {
	ID        string
	Satisfied bool
	Severity  Severity
	Message   string
}

// Ordering selects whether present required events must additionally appear
// in declaration order within the trace.
//
// The lesson checkers this engine generalizes perform unanchored presence
// search, so OrderingUnordered is the default; chronological enforcement is
// an explicit opt-in knob.
type Ordering int

const (
	OrderingUnordered Ordering = iota
	OrderingChronological
)

// Options controls checker behavior. The zero value is the permissive,
// unordered mode.
type Options struct {
	Ordering Ordering
}

// Report is the aggregated result of one validation run.
type Report struct {
	Scenario string
	TraceCID string
	Outcomes []Outcome
	Pass     bool
}

// Check evaluates the scan result against the grammar's full expectation
// set. It always produces every outcome rather than short-circuiting, in
// this fixed order: required events (declaration order), ordering violations
// when chronological mode is on, cross-references, then optional events.
//
// The overall result is true iff no Error-severity outcome is unsatisfied;
// warnings never flip it.
func Check(g *Grammar, res ScanResult, opts Options) Report {
	events := make(map[string]Event, len(res.Events))
	for _, ev := range res.Events {
		events[ev.Kind] = ev
	}
	faults := make(map[string]Outcome, len(res.Faults))
	for _, f := range res.Faults {
		faults[f.ID] = f
	}

	var out []Outcome

	// Step 1: required events present.
	for _, spec := range g.Specs() {
		if spec.Necessity != Required {
			continue
		}
		if f, ok := faults[spec.Kind]; ok {
			out = append(out, f)
			continue
		}
		if ev, ok := events[spec.Kind]; ok {
			out = append(out, Outcome{
				ID:        spec.Kind,
				Satisfied: true,
				Severity:  SeverityError,
				Message:   presentMessage(ev),
			})
			continue
		}
		out = append(out, Outcome{
			ID:       spec.Kind,
			Severity: SeverityError,
			Message:  fmt.Sprintf("missing required event %s", spec.Kind),
		})
	}

	if opts.Ordering == OrderingChronological {
		out = append(out, checkOrdering(g, events)...)
	}

	// Step 3: cross-event field consistency.
	for _, ref := range g.CrossRefs() {
		out = append(out, checkCrossRef(g, ref, events))
	}

	// Step 2 (rendered last): optional events, advisory only when absent.
	for _, spec := range g.Specs() {
		if spec.Necessity != OptionalWarn {
			continue
		}
		if f, ok := faults[spec.Kind]; ok {
			out = append(out, f)
			continue
		}
		if ev, ok := events[spec.Kind]; ok {
			out = append(out, Outcome{
				ID:        spec.Kind,
				Satisfied: true,
				Severity:  SeverityWarning,
				Message:   presentMessage(ev),
			})
			continue
		}
		out = append(out, Outcome{
			ID:       spec.Kind,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("optional event absent: %s", spec.Kind),
		})
	}

	pass := true
	for _, o := range out {
		if !o.Satisfied && o.Severity == SeverityError {
			pass = false
		}
	}
	return Report{Outcomes: out, Pass: pass}
}

// checkOrdering requires the offsets of present required events to be
// non-decreasing in declaration order.
func checkOrdering(g *Grammar, events map[string]Event) []Outcome {
	var out []Outcome
	prevKind := ""
	prevOffset := -1
	for _, spec := range g.Specs() {
		if spec.Necessity != Required {
			continue
		}
		ev, ok := events[spec.Kind]
		if !ok {
			continue
		}
		if prevOffset >= 0 && ev.Offset < prevOffset {
			out = append(out, Outcome{
				ID:       "ordering",
				Severity: SeverityError,
				Message:  fmt.Sprintf("event %s appears before %s in the trace", spec.Kind, prevKind),
			})
		}
		prevKind, prevOffset = spec.Kind, ev.Offset
	}
	return out
}

// checkCrossRef collects the bound slot value from every participating event
// that is present. Fewer than two present participants satisfies the
// reference vacuously.
func checkCrossRef(g *Grammar, ref CrossRef, events map[string]Event) Outcome {
	var kinds []string
	var values []string
	for _, spec := range g.Specs() {
		slot, participates := ref.Slots[spec.Kind]
		if !participates {
			continue
		}
		ev, ok := events[spec.Kind]
		if !ok {
			continue
		}
		kinds = append(kinds, spec.Kind)
		values = append(values, ev.Slots[slot])
	}

	if len(values) < 2 {
		return Outcome{
			ID:        ref.Name,
			Satisfied: true,
			Severity:  SeverityError,
			Message:   "vacuously satisfied (fewer than two participating events present)",
		}
	}

	distinct := distinctInOrder(values)
	if len(distinct) > 1 {
		return Outcome{
			ID:       ref.Name,
			Severity: SeverityError,
			Message:  fmt.Sprintf("inconsistent %s across events: %s", ref.Name, strings.Join(distinct, ", ")),
		}
	}
	return Outcome{
		ID:        ref.Name,
		Satisfied: true,
		Severity:  SeverityError,
		Message:   fmt.Sprintf("consistent across %s: %s", strings.Join(kinds, ", "), distinct[0]),
	}
}

func distinctInOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func presentMessage(ev Event) string {
	if len(ev.Slots) == 0 {
		return "present"
	}
	names := make([]string, 0, len(ev.Slots))
	for name := range ev.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, ev.Slots[name]))
	}
	return fmt.Sprintf("present (%s)", strings.Join(parts, ", "))
}
