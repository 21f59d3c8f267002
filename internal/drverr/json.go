package drverr

import (
	"encoding/json"
	"fmt"
	"strings"
)

var addressLikeFieldMarkers = []string{"account", "address", "pubkey", "key", "owner", "authority"}

// ToJSON builds the structured diagnostic logged before a transaction aborts:
// code, msg and every field. Address-like fields are rendered as strings.
func (e *Error) ToJSON() map[string]any {
	out := make(map[string]any, len(e.Fields)+3)
	out["code"] = e.Code()
	out["msg"] = e.Message()
	for _, field := range e.Fields {
		out[field.Name] = jsonValue(field.Name, field.Value)
	}
	if e.Location.File != "" {
		out["location"] = e.Location.String()
	}
	return out
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}

// JSONString is ToJSON encoded as a single line.
func (e *Error) JSONString() string {
	raw, err := json.Marshal(e.ToJSON())
	if err != nil {
		return fmt.Sprintf(`{"code":%d,"msg":%q}`, e.Code(), e.Message())
	}
	return string(raw)
}

func jsonValue(name string, value any) any {
	if value == nil || !isAddressLike(name) {
		return value
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(value)
}

func isAddressLike(name string) bool {
	lowered := strings.ToLower(name)
	for _, marker := range addressLikeFieldMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
