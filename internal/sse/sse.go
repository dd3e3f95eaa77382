// Package sse implements the server-sent-events wire format used by the
// streaming completion path: one "data: <json>" line per chunk, terminated by
// a literal "data: [DONE]" sentinel.
package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DoneSentinel is the literal payload closing a stream. It is not JSON and
// must never be parsed as such.
const DoneSentinel = "[DONE]"

var (
	dataPrefix = []byte("data: ")
	eventEnd   = []byte("\n\n")
)

// Encode serializes one event payload into an SSE data line
func Encode(v interface{}) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	buf := make([]byte, 0, len(dataPrefix)+len(payload)+len(eventEnd))
	buf = append(buf, dataPrefix...)
	buf = append(buf, payload...)
	buf = append(buf, eventEnd...)
	return buf, nil
}

// Done returns the terminal sentinel event
func Done() []byte {
	return []byte("data: " + DoneSentinel + "\n\n")
}

// DecodeEvent parses one wire event. It returns the raw payload and whether
// the event is the terminal sentinel; consumers must treat done as
// end-of-stream and skip JSON parsing.
func DecodeEvent(event []byte) (payload []byte, done bool, err error) {
	trimmed := bytes.TrimSuffix(event, eventEnd)
	rest, ok := bytes.CutPrefix(trimmed, dataPrefix)
	if !ok {
		return nil, false, fmt.Errorf("malformed event: %q", event)
	}
	if string(rest) == DoneSentinel {
		return nil, true, nil
	}
	return rest, false, nil
}

// Split breaks a raw wire stream into its individual events. Used by tests
// and example clients to consume a buffered stream.
func Split(stream []byte) [][]byte {
	var events [][]byte
	for _, part := range bytes.Split(stream, eventEnd) {
		if len(bytes.TrimSpace(part)) == 0 {
			continue
		}
		events = append(events, part)
	}
	return events
}
