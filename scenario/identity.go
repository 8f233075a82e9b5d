package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 1: the program must start, print its peer identity, and report the
// host as running. Peer IDs at this stage are bare base58 digests.
func init() {
	Register(&Scenario{
		Name:        "identity",
		Description: "host startup and peer identity",
		Logs:        []Log{{Name: "stdout.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "startup",
					Pattern: `Starting Universal Connectivity Application`,
				},
				{
					Kind:    "peer-id",
					Pattern: `Local peer id: (?P<peer>[A-Za-z0-9]+)`,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.RawSHA256),
					},
				},
				{
					Kind:    "host-started",
					Pattern: `Host started with PeerId:`,
				},
			},
			nil,
		),
	})
}
