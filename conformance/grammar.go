package conformance

import (
	"fmt"
	"regexp"
)

// SlotValidator decides whether a captured slot value is acceptable.
// Implementations must be deterministic and side-effect free; the returned
// error message is included verbatim in the report.
type SlotValidator func(value string) error

// Necessity is the per-event presence policy.
type Necessity int

const (
	// Required events must appear in the trace; absence is an error.
	Required Necessity = iota
	// OptionalWarn events are logged as warnings when absent and never
	// affect the overall result.
	OptionalWarn
)

func (n Necessity) String() string {
	switch n {
	case Required:
		return "required"
	case OptionalWarn:
		return "optional"
	default:
		return fmt.Sprintf("necessity(%d)", int(n))
	}
}

// EventSpec declares one expected event: a pattern with named capture slots,
// the validator to apply to each slot, and the presence policy.
//
// Pattern is regexp syntax; every slot referenced by Slots must be a named
// capture group in it. EventSpecs are immutable once registered.
type EventSpec struct {
	Kind      string
	Pattern   string
	Slots     map[string]SlotValidator
	Necessity Necessity

	re    *regexp.Regexp
	slots []string
}

// CrossRef declares that a named field must hold an identical value across
// every listed event that is present in the trace. Slots maps event kind to
// the slot carrying the field in that event.
type CrossRef struct {
	Name  string
	Slots map[string]string
}

// Grammar is the per-scenario registry of event specs and cross-references.
// It is populated once at setup and immutable afterwards; registration
// failures are configuration errors and must be treated as fatal.
type Grammar struct {
	specs  []EventSpec
	byKind map[string]int
	refs   []CrossRef
}

func New() *Grammar {
	return &Grammar{byKind: make(map[string]int)}
}

// Register adds an event spec, compiling its pattern and checking that every
// slot bound to a validator exists as a named group.
func (g *Grammar) Register(spec EventSpec) error {
	if spec.Kind == "" {
		return newError(KindConfig, "TRC-CFG-001", "event spec with empty kind")
	}
	if _, dup := g.byKind[spec.Kind]; dup {
		return newError(KindConfig, "TRC-CFG-002", fmt.Sprintf("duplicate event kind: %s", spec.Kind))
	}
	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return wrapError(KindConfig, "TRC-CFG-003", fmt.Sprintf("invalid pattern for event %s: %v", spec.Kind, err), err)
	}

	groups := make(map[string]bool)
	var names []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = true
			names = append(names, name)
		}
	}
	for slot := range spec.Slots {
		if !groups[slot] {
			return newError(KindConfig, "TRC-CFG-004", fmt.Sprintf("event %s: validator bound to unknown slot %q", spec.Kind, slot))
		}
	}

	spec.re = re
	spec.slots = names
	if spec.Slots != nil {
		m := make(map[string]SlotValidator, len(spec.Slots))
		for k, v := range spec.Slots {
			m[k] = v
		}
		spec.Slots = m
	}
	g.byKind[spec.Kind] = len(g.specs)
	g.specs = append(g.specs, spec)
	return nil
}

// RegisterCrossRef adds a cross-reference. Every participating kind must be
// registered already and must expose the named slot; fewer than two
// participants would make the reference vacuous by construction, which is a
// configuration mistake.
func (g *Grammar) RegisterCrossRef(ref CrossRef) error {
	if ref.Name == "" {
		return newError(KindConfig, "TRC-CFG-005", "cross-reference with empty name")
	}
	for _, r := range g.refs {
		if r.Name == ref.Name {
			return newError(KindConfig, "TRC-CFG-006", fmt.Sprintf("duplicate cross-reference name: %s", ref.Name))
		}
	}
	if len(ref.Slots) < 2 {
		return newError(KindConfig, "TRC-CFG-007", fmt.Sprintf("cross-reference %s needs at least two participating events", ref.Name))
	}
	for kind, slot := range ref.Slots {
		idx, ok := g.byKind[kind]
		if !ok {
			return newError(KindConfig, "TRC-CFG-008", fmt.Sprintf("cross-reference %s names unregistered event kind: %s", ref.Name, kind))
		}
		if !g.specs[idx].hasSlot(slot) {
			return newError(KindConfig, "TRC-CFG-009", fmt.Sprintf("cross-reference %s: event %s has no slot %q", ref.Name, kind, slot))
		}
	}
	m := make(map[string]string, len(ref.Slots))
	for k, v := range ref.Slots {
		m[k] = v
	}
	g.refs = append(g.refs, CrossRef{Name: ref.Name, Slots: m})
	return nil
}

// Specs returns the registered event specs in declaration order.
func (g *Grammar) Specs() []EventSpec {
	return append([]EventSpec(nil), g.specs...)
}

// CrossRefs returns the registered cross-references in declaration order.
func (g *Grammar) CrossRefs() []CrossRef {
	return append([]CrossRef(nil), g.refs...)
}

func (s *EventSpec) hasSlot(name string) bool {
	for _, n := range s.slots {
		if n == name {
			return true
		}
	}
	return false
}

// match finds the first occurrence of the spec's pattern in text and
// extracts named slot values. offset is the byte offset of the match.
func (s *EventSpec) match(text string) (slots map[string]string, offset int, ok bool) {
	loc := s.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, 0, false
	}
	slots = make(map[string]string)
	for i, name := range s.re.SubexpNames() {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			slots[name] = ""
			continue
		}
		slots[name] = text[start:end]
	}
	return slots, loc[0], true
}
