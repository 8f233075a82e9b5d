package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 5: identify checkpoint. Identify is the goal; a successful ping is
// advisory only, so its absence is a warning rather than a failure.
func init() {
	Register(&Scenario{
		Name:        "identify",
		Description: "identify request/response with agent and protocol metadata",
		Logs:        []Log{{Name: "checker.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "connected",
					Pattern: `Connected to: (?P<peer>12D3KooW[A-Za-z0-9]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
				{
					Kind:    "identify-sent",
					Pattern: `\[IDENTIFY\] Sending identify request to (?P<peer>12D3KooW[A-Za-z0-9]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
				{
					Kind:    "identified",
					Pattern: `\[IDENTIFY\] Identified peer: (?P<peer>12D3KooW[A-Za-z0-9]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
				{
					Kind:    "agent",
					Pattern: `\[IDENTIFY\] Agent: (?P<agent>[\w\./-]+)`,
				},
				{
					Kind:    "protocol-version",
					Pattern: `\[IDENTIFY\] Protocol version: (?P<version>[\w\./-]+)`,
				},
				{
					Kind:      "ping",
					Pattern:   `\[PING\] Ping to (?P<peer>12D3KooW[A-Za-z0-9]+): RTT (?P<rtt>[\d\.]+)ms`,
					Necessity: conformance.OptionalWarn,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519),
					},
				},
			},
			[]conformance.CrossRef{
				{
					Name: "peer identifier",
					Slots: map[string]string{
						"connected":     "peer",
						"identify-sent": "peer",
						"identified":    "peer",
					},
				},
			},
		),
	})
}
