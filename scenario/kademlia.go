package scenario

import (
	"uconn.dev/tracecheck/conformance"
	"uconn.dev/tracecheck/maddr"
	"uconn.dev/tracecheck/peerid"
)

// Lesson 7: Kademlia DHT. Traces come from up to three processes whose logs
// are concatenated; only the server-mode signal is mandatory, store/retrieve
// and peer-connection signals are advisory since either side may run
// standalone. Both Ed25519 and secp256k1 identities appear in DHT swarms.
func init() {
	Register(&Scenario{
		Name:        "kademlia",
		Description: "DHT server mode with store/retrieve signals",
		Logs: []Log{
			{Name: "server.log", Optional: true},
			{Name: "client.log", Optional: true},
			{Name: "checker.log", Optional: true},
		},
		Grammar: build(
			[]conformance.EventSpec{
				{
					Kind:    "server-mode",
					Pattern: `(?:DHT service started in server mode|checker-dht-started,server|Running in server mode)`,
				},
				{
					Kind:      "dht-put",
					Pattern:   `(?:Stored value '(?P<value>[^']+)' with key: (?P<key>[A-Za-z0-9]+)|dht-put,(?P<csvkey>[A-Za-z0-9]+),(?P<csvvalue>[^,\n]+))`,
					Necessity: conformance.OptionalWarn,
				},
				{
					Kind:      "dht-get",
					Pattern:   `(?:Retrieved value: [^,\n]+|dht-get,[A-Za-z0-9]+,[^,\n]+)`,
					Necessity: conformance.OptionalWarn,
				},
				{
					Kind:      "connected",
					Pattern:   `connected,(?P<peer>(?:12D3KooW|16Uiu2HAm)[A-Za-z0-9]+),(?P<addr>[/\w\.:-]+)`,
					Necessity: conformance.OptionalWarn,
					Slots: map[string]conformance.SlotValidator{
						"peer": peerid.Validator(peerid.Ed25519, peerid.Secp256k1),
						"addr": maddr.Validator(maddr.TCP),
					},
				},
			},
			nil,
		),
	})
}
