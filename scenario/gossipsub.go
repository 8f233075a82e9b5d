package scenario

import (
	"uconn.dev/tracecheck/conformance"
)

// Lesson 6: gossipsub checkpoint. The chat program must subscribe to the
// universal-connectivity topic and surface at least one received message.
// Message senders appear as truncated identities, so no peer validator
// applies to the sender slot.
func init() {
	Register(&Scenario{
		Name:        "gossipsub",
		Description: "topic subscription and received gossipsub chat message",
		Logs:        []Log{{Name: "checker.log"}},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "host-started",
					Pattern: `Host started, listening on:`,
				},
				{
					Kind:    "subscribed",
					Pattern: `Subscribed to topics: .*universal-connectivity`,
				},
				{
					Kind:    "chat-message",
					Pattern: `\[.+?\((?P<sender>[A-Za-z0-9]{8,})\)\]: .+`,
				},
			},
			nil,
		),
	})
}
