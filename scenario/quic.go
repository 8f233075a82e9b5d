package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/maddr"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 4: QUIC transport. Addresses must carry a UDP port and the
// versioned quic-v1 tag; one peer identity threads through the connect,
// ping, and close events.
func init() {
	Register(&Scenario{
		Name:        "quic-transport",
		Description: "QUIC transport with ping and connection lifecycle",
		Logs:        []Log{{Name: "checker.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "incoming",
					Pattern: `incoming,(?P<target>[/\w\.:-]+),(?P<from>[/\w\.:-]+)`,
					Slots: map[string]conformance.SlotValidator{
						"target": maddr.Validator(maddr.QUICv1),
						"from":   maddr.Validator(maddr.QUICv1),
					},
				},
				{
					Kind:    "connected",
					Pattern: `connected,(?P<peer>12D3KooW[A-Za-z0-9]+),(?P<addr>[/\w\.:-]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
						"addr": maddr.Validator(maddr.QUICv1),
					},
				},
				{
					Kind:    "ping",
					Pattern: `ping,(?P<peer>12D3KooW[A-Za-z0-9]+),(?P<rtt>\d+\.?\d*)\s*ms`,
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
						"ping":      "peer",
						"closed":    "peer",
					},
				},
			},
		),
	})
}
