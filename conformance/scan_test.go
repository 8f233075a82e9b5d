package conformance

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := New()
	specs := []EventSpec{
		{
			Kind:    "incoming",
			Pattern: `incoming,(?P<addr>[/\w\.:-]+),listening`,
			Slots: map[string]SlotValidator{
				"addr": func(v string) error {
					if !strings.HasPrefix(v, "/ip4/") {
						return errors.New("missing recognized network-family prefix: " + v)
					}
					return nil
				},
			},
		},
		{Kind: "connected", Pattern: `connected,(?P<peer>\w+)`},
		{Kind: "closed", Pattern: `closed,(?P<peer>\w+)`},
	}
	for _, s := range specs {
		if err := g.Register(s); err != nil {
			t.Fatalf("Register %s: %v", s.Kind, err)
		}
	}
	return g
}

func TestScan_FirstOccurrence(t *testing.T) {
	g := testGrammar(t)
	trace := Corpus{{Name: "checker.log", Text: "connected,peerA\nconnected,peerB\n"}}

	res := Scan(trace, g)
	ev, ok := res.Event("connected")
	if !ok {
		t.Fatalf("expected connected event")
	}
	if ev.Slots["peer"] != "peerA" {
		t.Fatalf("expected first occurrence peerA, got %s", ev.Slots["peer"])
	}
	if ev.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", ev.Offset)
	}
}

func TestScan_AbsentKindYieldsNoEvent(t *testing.T) {
	g := testGrammar(t)
	res := Scan(Corpus{{Name: "checker.log", Text: "connected,peerA\n"}}, g)
	if _, ok := res.Event("closed"); ok {
		t.Fatalf("absent pattern must yield no event")
	}
	if len(res.Faults) != 0 {
		t.Fatalf("absence is not a fault: %v", res.Faults)
	}
}

func TestScan_SlotFaultContainment(t *testing.T) {
	g := testGrammar(t)
	trace := Corpus{{Name: "checker.log", Text: "incoming,not-an-address,listening\nconnected,peerA\n"}}

	res := Scan(trace, g)
	if _, ok := res.Event("incoming"); ok {
		t.Fatalf("faulted event must be suppressed")
	}
	if len(res.Faults) != 1 {
		t.Fatalf("expected one fault, got %d", len(res.Faults))
	}
	f := res.Faults[0]
	if f.ID != "incoming" || f.Satisfied || f.Severity != SeverityError {
		t.Fatalf("unexpected fault: %+v", f)
	}
	if !strings.Contains(f.Message, "not-an-address") {
		t.Fatalf("fault must carry the literal rejected value, got: %s", f.Message)
	}
	// Other kinds keep scanning.
	if _, ok := res.Event("connected"); !ok {
		t.Fatalf("fault in one kind must not stop other kinds")
	}
}

func TestScan_Idempotent(t *testing.T) {
	g := testGrammar(t)
	trace := Corpus{
		{Name: "server.log", Text: "incoming,/ip4/10.0.0.2/tcp/9000,listening"},
		{Name: "checker.log", Text: "connected,peerA\nclosed,peerA\n"},
	}
	a := Scan(trace, g)
	b := Scan(trace, g)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scan not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestCorpus_ConcatenationInsertsSeparator(t *testing.T) {
	c := Corpus{
		{Name: "a.log", Text: "closed,peer"},
		{Name: "b.log", Text: "A-tail"},
	}
	if got := c.Text(); got != "closed,peer\nA-tail\n" {
		t.Fatalf("unexpected concatenation: %q", got)
	}
}

func TestCorpus_Empty(t *testing.T) {
	if !(Corpus{}).Empty() {
		t.Fatalf("nil corpus must be empty")
	}
	if !(Corpus{{Name: "a", Text: "  \n\t"}}).Empty() {
		t.Fatalf("whitespace-only corpus must be empty")
	}
	if (Corpus{{Name: "a", Text: "x"}}).Empty() {
		t.Fatalf("non-blank corpus must not be empty")
	}
}
