package conformance

import (
	"fmt"
	"sort"
	"strings"
)

// Blob is one named trace source (conceptually a log file).
type Blob struct {
	Name string
	Text string
}

// Corpus is an ordered set of blobs. Scanning always runs over the
// concatenation, so event correlation is insensitive to which source a line
// came from.
type Corpus []Blob

// Text returns the concatenated trace text. A newline is inserted between
// blobs that do not end with one so lines never glue across sources.
func (c Corpus) Text() string {
	var sb strings.Builder
	for _, b := range c {
		sb.WriteString(b.Text)
		if b.Text != "" && !strings.HasSuffix(b.Text, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Empty reports whether the corpus carries no non-whitespace text.
func (c Corpus) Empty() bool {
	return strings.TrimSpace(c.Text()) == ""
}

// Event is one grammar match extracted from the trace.
type Event struct {
	Kind   string
	Slots  map[string]string
	Offset int
}

// ScanResult is the outcome of one scan: the extracted events plus an Error
// outcome for every event whose captured slot failed its validator.
type ScanResult struct {
	Events []Event
	Faults []Outcome
}

// Event returns the extracted event of the given kind, if any.
func (r ScanResult) Event(kind string) (Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

// Scan locates the first occurrence of every registered event spec in the
// corpus. Extraction is presence-based and unordered: each spec is searched
// independently over the full text.
//
// A slot validator rejection suppresses the event and records an Error
// outcome for its kind, but scanning continues for every other kind. An
// absent pattern simply yields no event; whether that is fatal is the
// checker's decision, not the scanner's.
func Scan(c Corpus, g *Grammar) ScanResult {
	text := c.Text()
	var res ScanResult

	for _, spec := range g.Specs() {
		slots, offset, ok := spec.match(text)
		if !ok {
			continue
		}

		// Deterministic slot evaluation order: the first rejection is the
		// one reported, so iterate by name.
		names := make([]string, 0, len(spec.Slots))
		for name := range spec.Slots {
			names = append(names, name)
		}
		sort.Strings(names)

		faulted := false
		for _, name := range names {
			v := spec.Slots[name]
			if v == nil {
				continue
			}
			if err := v(slots[name]); err != nil {
				res.Faults = append(res.Faults, Outcome{
					ID:       spec.Kind,
					Severity: SeverityError,
					Message:  fmt.Sprintf("slot %s rejected: %v", name, err),
				})
				faulted = true
				break
			}
		}
		if faulted {
			continue
		}

		res.Events = append(res.Events, Event{Kind: spec.Kind, Slots: slots, Offset: offset})
	}
	return res
}
