package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 3: ping checkpoint over Noise + Yamux. Peer identities here are
// RSA-keyed (Qm... form). Two identities are tracked independently: the one
// the client dials and pings, and the one the server sees on its streams.
func init() {
	Register(&Scenario{
		Name:        "ping",
		Description: "ping protocol with Noise security and Yamux multiplexing",
		Logs:        []Log{{Name: "checker.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "noise",
					Pattern: `Security: Noise encryption enabled`,
				},
				{
					Kind:    "yamux",
					Pattern: `Multiplexing: Yamux enabled`,
				},
				{
					Kind:    "connected",
					Pattern: `Connected to (?P<peer>Qm[1-9A-HJ-NP-Za-km-z]{44})`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RSA),
					},
				},
				{
					Kind:    "ping-received",
					Pattern: `received ping from (?P<peer>Qm[1-9A-HJ-NP-Za-km-z]{44})`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RSA),
					},
				},
				{
					Kind:    "pong-sent",
					Pattern: `responded with pong to (?P<peer>Qm[1-9A-HJ-NP-Za-km-z]{44})`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RSA),
					},
				},
				{
					Kind:    "rtt",
					Pattern: `ping: Success from (?P<peer>Qm[1-9A-HJ-NP-Za-km-z]{44}), RTT = (?P<rtt>\d+\.\d+) ms`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RSA),
					},
				},
				{
					Kind:    "stream-closed",
					Pattern: `Closed ping stream from (?P<peer>Qm[1-9A-HJ-NP-Za-km-z]{44})`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RSA),
					},
				},
			},
			[]conformance.CrossRef{
				{
					Name: "client peer identifier",
					Slots: map[string]string{
						"connected": "peer",
						"rtt":       "peer",
					},
				},
				{
					Name: "server peer identifier",
					Slots: map[string]string{
						"ping-received": "peer",
						"pong-sent":     "peer",
						"stream-closed": "peer",
					},
				},
			},
		),
	})
}
