package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published on the
// MemoryBus are already typed; anything else, such as a map read back from
// JSON, is converted through a JSON round trip.
func DecodePayload[T any](payload any) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
