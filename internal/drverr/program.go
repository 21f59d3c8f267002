package drverr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// CustomError is the host-visible form of a failed instruction: only the
// numeric code crosses the program boundary.
type CustomError uint32

func (c CustomError) Error() string {
	return fmt.Sprintf("custom program error: 0x%x", uint32(c))
}

// Kind resolves the code back to its Kind.
func (c CustomError) Kind() (Kind, bool) {
	return LookupCode(uint32(c))
}

// ProgramError logs the JSON diagnostic of err and converts it to the host
// form. Errors that do not carry a Kind map to code 0.
func ProgramError(logger *slog.Logger, err error) error {
	if err == nil {
		return nil
	}
	var custom CustomError
	if errors.As(err, &custom) {
		return custom
	}
	Log(logger, err)
	var derr *Error
	if !errors.As(err, &derr) {
		return CustomError(0)
	}
	return CustomError(derr.Code())
}

// Log writes the diagnostic of err at error level. A nil logger is a no-op.
func Log(logger *slog.Logger, err error) {
	if logger == nil || err == nil {
		return
	}
	var derr *Error
	if !errors.As(err, &derr) {
		logger.Error("program error without kind", "err", err)
		return
	}
	logger.Error(derr.JSONString())
}

var kindsByCode = func() map[uint32]Kind {
	out := make(map[uint32]Kind, kindCount)
	for k := Kind(1); k < kindCount; k++ {
		out[kinds[k].code] = k
	}
	return out
}()

// LookupCode finds the Kind registered for a numeric code.
func LookupCode(code uint32) (Kind, bool) {
	k, ok := kindsByCode[code]
	return k, ok
}

// CatalogEntry documents one error kind.
type CatalogEntry struct {
	Code     uint32   `json:"code"`
	Name     string   `json:"name"`
	Template string   `json:"msg"`
	Fields   []string `json:"fields,omitempty"`
}

// Catalog lists every error kind ordered by code.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, kindCount-1)
	for k := Kind(1); k < kindCount; k++ {
		out = append(out, CatalogEntry{
			Code:     k.Code(),
			Name:     k.Name(),
			Template: k.Template(),
			Fields:   k.FieldNames(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ParseInstructionError extracts the failing instruction index and custom
// code from a transaction error as returned by the RPC, e.g.
// {"InstructionError":[2,{"Custom":251}]}.
func ParseInstructionError(raw any) (index int, code uint32, ok bool) {
	if raw == nil {
		return 0, 0, false
	}
	var value any
	switch typed := raw.(type) {
	case []byte:
		if err := json.Unmarshal(typed, &value); err != nil {
			return 0, 0, false
		}
	case json.RawMessage:
		if err := json.Unmarshal(typed, &value); err != nil {
			return 0, 0, false
		}
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return 0, 0, false
		}
		if err := json.Unmarshal(encoded, &value); err != nil {
			return 0, 0, false
		}
	}

	obj, isMap := value.(map[string]any)
	if !isMap {
		return 0, 0, false
	}
	pair, isSlice := obj["InstructionError"].([]any)
	if !isSlice || len(pair) != 2 {
		return 0, 0, false
	}
	idx, isNumber := pair[0].(float64)
	if !isNumber || !isWholeNumber(idx) {
		return 0, 0, false
	}
	inner, isMap := pair[1].(map[string]any)
	if !isMap {
		return 0, 0, false
	}
	custom, isNumber := inner["Custom"].(float64)
	if !isNumber || !isWholeNumber(custom) || custom > math.MaxUint32 {
		return 0, 0, false
	}
	return int(idx), uint32(custom), true
}

func isWholeNumber(v float64) bool {
	return v >= 0 && v == math.Trunc(v)
}

const programLogPrefix = "Program log: "

// Diagnostic is a JSON error diagnostic recovered from a program log line.
type Diagnostic struct {
	Code   uint32         `json:"code"`
	Msg    string         `json:"msg"`
	Kind   string         `json:"kind,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// ParseDiagnostic recognises a "Program log: {...}" line carrying an error
// diagnostic produced by ToJSON.
func ParseDiagnostic(line string) (*Diagnostic, bool) {
	body, found := strings.CutPrefix(strings.TrimSpace(line), programLogPrefix)
	if !found || !strings.HasPrefix(body, "{") {
		return nil, false
	}
	raw := make(map[string]any)
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, false
	}
	code, hasCode := raw["code"].(float64)
	msg, hasMsg := raw["msg"].(string)
	if !hasCode || !hasMsg || code < 0 {
		return nil, false
	}

	out := &Diagnostic{Code: uint32(code), Msg: msg}
	if kind, ok := LookupCode(out.Code); ok {
		out.Kind = kind.Name()
	}
	for key, value := range raw {
		if key == "code" || key == "msg" {
			continue
		}
		if out.Fields == nil {
			out.Fields = make(map[string]any)
		}
		out.Fields[key] = value
	}
	return out, true
}
