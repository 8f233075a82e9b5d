package conformance

import (
	"strings"
	"testing"
)

// lifecycleGrammar mirrors the shape of the transport checkpoints: three
// required events, one optional event, one cross-reference on the peer slot.
func lifecycleGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := New()
	specs := []EventSpec{
		{Kind: "incoming", Pattern: `incoming,(?P<addr>[^,\n]+),listening`},
		{Kind: "connected", Pattern: `connected,(?P<peer>\w+)`},
		{Kind: "closed", Pattern: `closed,(?P<peer>\w+)`},
		{Kind: "ping", Pattern: `ping,(?P<peer>\w+)`, Necessity: OptionalWarn},
	}
	for _, s := range specs {
		if err := g.Register(s); err != nil {
			t.Fatalf("Register %s: %v", s.Kind, err)
		}
	}
	ref := CrossRef{Name: "peer identifier", Slots: map[string]string{"connected": "peer", "closed": "peer"}}
	if err := g.RegisterCrossRef(ref); err != nil {
		t.Fatalf("RegisterCrossRef: %v", err)
	}
	return g
}

func runCheck(t *testing.T, g *Grammar, trace string, opts Options) Report {
	t.Helper()
	return Check(g, Scan(Corpus{{Name: "checker.log", Text: trace}}, g), opts)
}

func outcomeByID(r Report, id string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.ID == id {
			return o, true
		}
	}
	return Outcome{}, false
}

func TestCheck_AllRequiredPresent(t *testing.T) {
	g := lifecycleGrammar(t)
	rep := runCheck(t, g, "incoming,/ip4/10.0.0.2/tcp/9000,listening\nconnected,peerA\nclosed,peerA\n", Options{})
	if !rep.Pass {
		t.Fatalf("expected pass, outcomes: %+v", rep.Outcomes)
	}
	// required outcomes lead, in declaration order.
	if rep.Outcomes[0].ID != "incoming" || rep.Outcomes[1].ID != "connected" || rep.Outcomes[2].ID != "closed" {
		t.Fatalf("unexpected outcome order: %+v", rep.Outcomes)
	}
}

func TestCheck_MissingRequiredEvent(t *testing.T) {
	g := lifecycleGrammar(t)
	rep := runCheck(t, g, "incoming,/ip4/10.0.0.2/tcp/9000,listening\nconnected,peerA\n", Options{})
	if rep.Pass {
		t.Fatalf("expected failure")
	}
	o, ok := outcomeByID(rep, "closed")
	if !ok {
		t.Fatalf("no outcome for closed")
	}
	if o.Satisfied || o.Severity != SeverityError {
		t.Fatalf("unexpected outcome: %+v", o)
	}
	if o.Message != "missing required event closed" {
		t.Fatalf("unexpected message: %s", o.Message)
	}
}

func TestCheck_InconsistentCrossReference(t *testing.T) {
	g := lifecycleGrammar(t)
	rep := runCheck(t, g, "incoming,/ip4/10.0.0.2/tcp/9000,listening\nconnected,peerA\nclosed,peerB\n", Options{})
	if rep.Pass {
		t.Fatalf("expected failure")
	}
	var inconsistencies int
	for _, o := range rep.Outcomes {
		if o.ID == "peer identifier" && !o.Satisfied {
			inconsistencies++
			if o.Message != "inconsistent peer identifier across events: peerA, peerB" {
				t.Fatalf("unexpected message: %s", o.Message)
			}
		}
	}
	if inconsistencies != 1 {
		t.Fatalf("expected exactly one inconsistency outcome, got %d", inconsistencies)
	}
}

func TestCheck_CrossReferenceVacuous(t *testing.T) {
	g := lifecycleGrammar(t)
	// Only connected is present; the reference has one participant.
	rep := runCheck(t, g, "incoming,/ip4/10.0.0.2/tcp/9000,listening\nconnected,peerA\n", Options{})
	o, ok := outcomeByID(rep, "peer identifier")
	if !ok {
		t.Fatalf("no cross-reference outcome")
	}
	if !o.Satisfied {
		t.Fatalf("expected vacuous satisfaction, got: %+v", o)
	}
}

func TestCheck_OptionalAbsentIsWarningOnly(t *testing.T) {
	g := lifecycleGrammar(t)
	rep := runCheck(t, g, "incoming,/ip4/10.0.0.2/tcp/9000,listening\nconnected,peerA\nclosed,peerA\n", Options{})
	o, ok := outcomeByID(rep, "ping")
	if !ok {
		t.Fatalf("no outcome for optional ping")
	}
	if o.Satisfied || o.Severity != SeverityWarning {
		t.Fatalf("expected unsatisfied warning, got: %+v", o)
	}
	if !rep.Pass {
		t.Fatalf("warning must not flip the result")
	}
}

func TestCheck_FaultedRequiredEventCountsOnce(t *testing.T) {
	g := New()
	spec := EventSpec{
		Kind:    "incoming",
		Pattern: `incoming,(?P<addr>[^,\n]+),listening`,
		Slots: map[string]SlotValidator{
			"addr": func(v string) error {
				if !strings.HasPrefix(v, "/ip4/") {
					return &Error{Kind: KindValidation, RuleID: "TRC-VAL-001", Message: "missing recognized network-family prefix: " + v}
				}
				return nil
			},
		},
	}
	if err := g.Register(spec); err != nil {
		t.Fatalf("Register: %v", err)
	}
	rep := runCheck(t, g, "incoming,not-an-address,listening\n", Options{})
	if rep.Pass {
		t.Fatalf("expected failure")
	}
	var got int
	for _, o := range rep.Outcomes {
		if o.ID == "incoming" {
			got++
			if !strings.Contains(o.Message, "not-an-address") {
				t.Fatalf("fault outcome must carry the rejected token: %s", o.Message)
			}
		}
	}
	if got != 1 {
		t.Fatalf("faulted kind must produce exactly one outcome, got %d", got)
	}
}

func TestCheck_ChronologicalOrdering(t *testing.T) {
	g := lifecycleGrammar(t)
	trace := "closed,peerA\nconnected,peerA\nincoming,/ip4/10.0.0.2/tcp/9000,listening\n"

	unordered := runCheck(t, g, trace, Options{})
	if !unordered.Pass {
		t.Fatalf("unordered mode must accept out-of-order events: %+v", unordered.Outcomes)
	}

	ordered := runCheck(t, g, trace, Options{Ordering: OrderingChronological})
	if ordered.Pass {
		t.Fatalf("chronological mode must reject out-of-order events")
	}
	if _, ok := outcomeByID(ordered, "ordering"); !ok {
		t.Fatalf("expected ordering outcome, got: %+v", ordered.Outcomes)
	}
}
