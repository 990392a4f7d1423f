package event

import "encoding/json"

// DecodePayload extracts a typed payload from an event. In-process events
// already carry the struct, so a type assertion is tried first; payloads
// that arrived serialized fall back to a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if typed, ok := input.(T); ok {
		return typed, nil
	}

	var decoded T
	raw, err := json.Marshal(input)
	if err != nil {
		return decoded, err
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return decoded, err
	}
	return decoded, nil
}
