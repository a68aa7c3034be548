package jsonHelpers

import "encoding/json"

// DeserializeJsonOnto decodes over a copy of base, so keys missing from the
// input keep base's values.
func DeserializeJsonOnto[To any](bytes []byte, base To) (To, error) {
	to := base
	err := json.Unmarshal(bytes, &to)
	return to, err
}
