// Package maddr validates composed (multiaddr-style) network addresses.
//
// An address is a sequence of /protocol/value segments. Validation checks
// the network-family head segment and the presence of an allowed transport;
// the allowed transport set is per-scenario configuration, not a constant.
package maddr

import (
	"fmt"
	"strings"
)

// Transport identifies one recognized transport marker.
type Transport int

const (
	// TCP is the stream transport marker (/tcp, optionally with a port).
	TCP Transport = iota + 1
	// QUICv1 is the datagram transport; it requires a /udp/<port> segment
	// and the versioned /quic-v1 tag.
	QUICv1
)

func (t Transport) String() string {
	switch t {
	case TCP:
		return "tcp"
	case QUICv1:
		return "quic-v1"
	default:
		return fmt.Sprintf("transport(%d)", int(t))
	}
}

// Validate checks that token is a composed address beginning with a
// recognized network-family segment and carrying at least one of the allowed
// transports. The returned error names the literal token.
func Validate(token string, allowed ...Transport) error {
	if token == "" {
		return fmt.Errorf("empty composed address")
	}
	if len(allowed) == 0 {
		return fmt.Errorf("no transports configured for composed address: %s", token)
	}
	if !strings.HasPrefix(token, "/ip4/") && !strings.HasPrefix(token, "/ip6/") {
		return fmt.Errorf("missing recognized network-family prefix: %s", token)
	}

	segs := strings.Split(strings.Trim(token, "/"), "/")
	for _, t := range allowed {
		switch t {
		case TCP:
			if hasSegment(segs, "tcp") {
				return nil
			}
		case QUICv1:
			if hasSegment(segs, "quic-v1") && hasUDPPort(segs) {
				return nil
			}
		}
	}

	// No allowed transport satisfied; report the most specific reason.
	if len(allowed) == 1 {
		switch allowed[0] {
		case TCP:
			return fmt.Errorf("missing TCP transport in composed address: %s", token)
		case QUICv1:
			if !hasSegment(segs, "quic-v1") {
				return fmt.Errorf("missing QUIC transport in composed address (expected /quic-v1): %s", token)
			}
			return fmt.Errorf("missing UDP port in composed address: %s", token)
		}
	}
	return fmt.Errorf("no allowed transport in composed address (allowed: %s): %s", transportList(allowed), token)
}

// Validator adapts Validate into a slot validator for an event grammar.
func Validator(allowed ...Transport) func(string) error {
	set := append([]Transport(nil), allowed...)
	return func(token string) error {
		return Validate(token, set...)
	}
}

func hasSegment(segs []string, name string) bool {
	for _, s := range segs {
		if s == name {
			return true
		}
	}
	return false
}

// hasUDPPort reports whether a /udp segment is directly followed by a
// numeric port segment.
func hasUDPPort(segs []string) bool {
	for i, s := range segs {
		if s != "udp" {
			continue
		}
		if i+1 >= len(segs) {
			return false
		}
		return isDigits(segs[i+1])
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func transportList(allowed []Transport) string {
	parts := make([]string, 0, len(allowed))
	for _, t := range allowed {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ", ")
}
