package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/maddr"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 2: TCP transport. The checker peer emits comma-separated events;
// the peer reported at connect must be the one reported at close.
func init() {
	Register(&Scenario{
		Name:        "tcp-transport",
		Description: "TCP transport with connection lifecycle",
		Logs:        []Log{{Name: "checker.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "incoming",
					Pattern: `incoming,(?P<addr>[/\w\.:-]+),listening`,
					Slots: map[string]conformance.SlotValidator{
						"addr": maddr.Validator(maddr.TCP),
					},
				},
				{
					Kind:    "connected",
					Pattern: `connected,(?P<peer>12D3KooW[A-Za-z0-9]+),\(['"](?P<ip>[^'"]+)['"],\s*(?P<port>\d+)\)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
				{
					Kind:    "closed",
					Pattern: `closed,(?P<peer>12D3KooW[A-Za-z0-9]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
			},
			[]conformance.CrossRef{
				{
					Name: "peer identifier",
					Slots: map[string]string{
						"connected": "peer",
						"closed":    "peer",
					},
				},
			},
		),
	})
}
