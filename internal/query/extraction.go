package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/llm"
	"github.com/spf13/cast"
)

// ExtractionStatus tags the outcome of decoding an extractor completion.
type ExtractionStatus int

const (
	// ExtractionOK means the completion held a JSON object with at least one field.
	ExtractionOK ExtractionStatus = iota
	// ExtractionEmpty means the completion was blank or held an empty object.
	ExtractionEmpty
	// ExtractionFailed means no JSON object could be decoded from the completion.
	ExtractionFailed
)

func (s ExtractionStatus) String() string {
	switch s {
	case ExtractionOK:
		return "ok"
	case ExtractionEmpty:
		return "empty"
	case ExtractionFailed:
		return "failed"
	default:
		return fmt.Sprintf("ExtractionStatus(%d)", int(s))
	}
}

// Extraction is the untrusted result of one extractor call. Fields is nil
// unless Status is ExtractionOK; Reason is set only for ExtractionFailed.
type Extraction struct {
	Fields map[string]any
	Reason string
	Status ExtractionStatus
}

// DecodeExtraction pulls the embedded JSON object out of a completion.
// It never fails; malformed input yields ExtractionEmpty or ExtractionFailed.
func DecodeExtraction(completion string) Extraction {
	if strings.TrimSpace(completion) == "" {
		return Extraction{Status: ExtractionEmpty}
	}

	object, ok := llm.ExtractJSONObject(completion)
	if !ok {
		return Extraction{Status: ExtractionFailed, Reason: "no JSON object in completion"}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(object), &fields); err != nil {
		return Extraction{Status: ExtractionFailed, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if len(fields) == 0 {
		return Extraction{Status: ExtractionEmpty}
	}

	return Extraction{Status: ExtractionOK, Fields: fields}
}

// Err describes a failed extraction, or returns nil.
func (e Extraction) Err() error {
	if e.Status != ExtractionFailed {
		return nil
	}
	return fmt.Errorf("%w: %s", common.ErrExtractionFailed, e.Reason)
}

// Raw returns the field value as decoded, or nil.
func (e Extraction) Raw(key string) any {
	return e.Fields[key]
}

// String returns a trimmed string field. Numbers and booleans are stringified;
// objects, arrays and blank values report false.
func (e Extraction) String(key string) (string, bool) {
	value, ok := e.Fields[key]
	if !ok || value == nil {
		return "", false
	}
	switch value.(type) {
	case map[string]any, []any:
		return "", false
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Int returns a positive integer field. Strings holding numbers are accepted.
func (e Extraction) Int(key string) (int, bool) {
	value, ok := e.Fields[key]
	if !ok || value == nil {
		return 0, false
	}
	if s, isString := value.(string); isString {
		value = strings.TrimSpace(s)
	}

	n, err := cast.ToIntE(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
