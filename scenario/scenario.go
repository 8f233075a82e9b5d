// Package scenario holds the declarative expectation tables, one per lesson
// checkpoint, plus a name registry for the CLI.
//
// Each scenario bundles the well-known log names it reads, the event grammar
// and cross-references to enforce, and the checker options. Tables are built
// at init; any configuration error in a table is a programmer mistake and
// panics immediately.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"uconn.dev/tracecheck/conformance"
)

// Log names one trace source. Optional logs may be absent individually, but
// a scenario with no readable log at all is always an ingestion failure.
type Log struct {
	Name     string
	Optional bool
}

type Scenario struct {
	Name        string
	Description string
	Logs        []Log
	Grammar     *conformance.Grammar
	Options     conformance.Options
}

// Load reads the scenario's well-known logs from dir into a corpus. A
// missing required log, or no present log at all, is an ingestion error.
func (s *Scenario) Load(dir string) (conformance.Corpus, error) {
	var corpus conformance.Corpus
	for _, l := range s.Logs {
		b, err := os.ReadFile(filepath.Join(dir, l.Name))
		if err != nil {
			if os.IsNotExist(err) && l.Optional {
				continue
			}
			return nil, ingestError(l.Name, err)
		}
		corpus = append(corpus, conformance.Blob{Name: l.Name, Text: string(b)})
	}
	if len(corpus) == 0 {
		return nil, ingestError(s.logNames(), fmt.Errorf("no trace file found"))
	}
	return corpus, nil
}

// Run executes the full engine pass for this scenario over the corpus.
func (s *Scenario) Run(c conformance.Corpus) conformance.Report {
	return conformance.Run(s.Name, c, s.Grammar, s.Options)
}

func (s *Scenario) logNames() string {
	names := make([]string, 0, len(s.Logs))
	for _, l := range s.Logs {
		names = append(names, l.Name)
	}
	return strings.Join(names, ", ")
}

func ingestError(name string, cause error) error {
	return &conformance.Error{
		Kind:    conformance.KindIngest,
		RuleID:  "TRC-ING-001",
		Message: fmt.Sprintf("trace source unavailable: %s: %v", name, cause),
		Cause:   cause,
	}
}

var registry = make(map[string]*Scenario)

// Register adds a scenario to the global registry. Duplicate names are a
// programmer mistake.
func Register(s *Scenario) {
	if s == nil || s.Name == "" {
		panic("scenario: Register with empty name")
	}
	if _, dup := registry[s.Name]; dup {
		panic("scenario: duplicate name " + s.Name)
	}
	registry[s.Name] = s
}

// Lookup returns the named scenario.
func Lookup(name string) (*Scenario, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered scenario names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// build assembles a grammar from spec and cross-reference tables, panicking
// on any configuration error per the fail-fast contract.
func build(specs []conformance.EventSpec, refs []conformance.CrossRef) *conformance.Grammar {
	g := conformance.New()
	for _, spec := range specs {
		if err := g.Register(spec); err != nil {
			panic(err)
		}
	}
	for _, ref := range refs {
		if err := g.RegisterCrossRef(ref); err != nil {
			panic(err)
		}
	}
	return g
}
