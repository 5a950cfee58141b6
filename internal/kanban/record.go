package kanban

import (
	"strconv"
)

// Wrapper keys for the two physical shapes the API returns. Some endpoints
// return entity fields at the top level, others nest them under a per-entity
// wrapper key. Field resolution checks both.
const (
	CardWrapper   = "CardItem"
	BoardWrapper  = "BoardItem"
	ColumnWrapper = "ColumnItem"
)

// Record is a single API entity (card, board, or column) in whichever shape
// the server returned it. Records are never mutated after decoding.
type Record map[string]any

// Records converts a decoded JSON array into a slice of Records.
// Non-object elements are skipped.
func Records(v any) []Record {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

// Unwrap returns the record's inner sub-map for the given wrapper key, or the
// record itself when the wrapper is absent (flat shape).
func Unwrap(r Record, wrapper string) Record {
	if inner, ok := r[wrapper].(map[string]any); ok {
		return Record(inner)
	}
	return r
}

// field resolves name against both record shapes: top level first, then the
// wrapper sub-map. Returns nil when the field is absent in both.
func (r Record) field(wrapper, name string) any {
	if v, ok := r[name]; ok {
		return v
	}
	if inner, ok := r[wrapper].(map[string]any); ok {
		return inner[name]
	}
	return nil
}

// CardField resolves a field on a card record.
func (r Record) CardField(name string) any { return r.field(CardWrapper, name) }

// BoardField resolves a field on a board record.
func (r Record) BoardField(name string) any { return r.field(BoardWrapper, name) }

// ColumnField resolves a field on a column record.
func (r Record) ColumnField(name string) any { return r.field(ColumnWrapper, name) }

// Str renders a decoded JSON value as a string for comparison and map keys.
// Absent values render as the empty string; whole numbers render without a
// decimal point.
func Str(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}

// Truthy reports whether a decoded JSON value counts as set: false, zero,
// empty string, empty collection, and nil are all falsy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
