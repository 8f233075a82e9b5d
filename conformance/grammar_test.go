package conformance

import (
	"errors"
	"testing"
)

func TestRegister_DuplicateKind(t *testing.T) {
	g := New()
	if err := g.Register(EventSpec{Kind: "connected", Pattern: `connected`}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := g.Register(EventSpec{Kind: "connected", Pattern: `connected again`})
	if err == nil {
		t.Fatalf("expected duplicate-kind error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *conformance.Error, got %T", err)
	}
	if e.Kind != KindConfig {
		t.Fatalf("expected KindConfig, got %s", e.Kind)
	}
	if e.RuleID != "TRC-CFG-002" {
		t.Fatalf("expected RuleID TRC-CFG-002, got %s", e.RuleID)
	}
}

func TestRegister_InvalidPattern(t *testing.T) {
	g := New()
	err := g.Register(EventSpec{Kind: "broken", Pattern: `((`})
	if err == nil {
		t.Fatalf("expected pattern error")
	}
	if RuleID(err) != "TRC-CFG-003" {
		t.Fatalf("expected TRC-CFG-003, got %s", RuleID(err))
	}
	if !IsKind(err, KindConfig) {
		t.Fatalf("expected config kind")
	}
}

func TestRegister_ValidatorOnUnknownSlot(t *testing.T) {
	g := New()
	err := g.Register(EventSpec{
		Kind:    "connected",
		Pattern: `connected,(?P<peer>\w+)`,
		Slots: map[string]SlotValidator{
			"addr": func(string) error { return nil },
		},
	})
	if err == nil {
		t.Fatalf("expected unknown-slot error")
	}
	if RuleID(err) != "TRC-CFG-004" {
		t.Fatalf("expected TRC-CFG-004, got %s", RuleID(err))
	}
}

func TestRegisterCrossRef_Validation(t *testing.T) {
	g := New()
	if err := g.Register(EventSpec{Kind: "connected", Pattern: `connected,(?P<peer>\w+)`}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := g.Register(EventSpec{Kind: "closed", Pattern: `closed,(?P<peer>\w+)`}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name string
		ref  CrossRef
		rule string
	}{
		{
			name: "empty name",
			ref:  CrossRef{Slots: map[string]string{"connected": "peer", "closed": "peer"}},
			rule: "TRC-CFG-005",
		},
		{
			name: "single participant",
			ref:  CrossRef{Name: "peer", Slots: map[string]string{"connected": "peer"}},
			rule: "TRC-CFG-007",
		},
		{
			name: "unregistered kind",
			ref:  CrossRef{Name: "peer", Slots: map[string]string{"connected": "peer", "pinged": "peer"}},
			rule: "TRC-CFG-008",
		},
		{
			name: "missing slot",
			ref:  CrossRef{Name: "peer", Slots: map[string]string{"connected": "peer", "closed": "addr"}},
			rule: "TRC-CFG-009",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.RegisterCrossRef(tc.ref)
			if err == nil {
				t.Fatalf("expected config error")
			}
			if RuleID(err) != tc.rule {
				t.Fatalf("expected %s, got %s (%v)", tc.rule, RuleID(err), err)
			}
		})
	}

	good := CrossRef{Name: "peer identifier", Slots: map[string]string{"connected": "peer", "closed": "peer"}}
	if err := g.RegisterCrossRef(good); err != nil {
		t.Fatalf("RegisterCrossRef: %v", err)
	}
	err := g.RegisterCrossRef(good)
	if err == nil || RuleID(err) != "TRC-CFG-006" {
		t.Fatalf("expected duplicate-name TRC-CFG-006, got %v", err)
	}
}

func TestSpecs_DeclarationOrder(t *testing.T) {
	g := New()
	for _, kind := range []string{"incoming", "connected", "closed"} {
		if err := g.Register(EventSpec{Kind: kind, Pattern: kind}); err != nil {
			t.Fatalf("Register %s: %v", kind, err)
		}
	}
	specs := g.Specs()
	if len(specs) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(specs))
	}
	for i, want := range []string{"incoming", "connected", "closed"} {
		if specs[i].Kind != want {
			t.Fatalf("spec %d: expected %s, got %s", i, want, specs[i].Kind)
		}
	}
}
