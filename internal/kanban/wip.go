package kanban

import (
	"fmt"
)

// CardColumnType is the column type that participates in WIP accounting.
const CardColumnType = "CARD"

// ColumnReport describes one CARD-typed column's WIP status.
type ColumnReport struct {
	ColumnID     any      `json:"columnId"`
	ColumnTitle  any      `json:"columnTitle"`
	ColumnState  any      `json:"columnState"`
	CurrentCards int      `json:"currentCards"`
	MinWIP       any      `json:"minWIP"`
	MaxWIP       any      `json:"maxWIP"`
	Violations   []string `json:"violations"`
}

// CountByColumn tallies cards per column identifier. Cards with no resolvable
// column assignment are excluded from every count.
func CountByColumn(cards []Record) map[string]int {
	counts := make(map[string]int)
	for _, card := range cards {
		id := Str(card.CardField("columnId"))
		if id == "" {
			continue
		}
		counts[id]++
	}
	return counts
}

// EvaluateWIP joins per-column card counts against column WIP thresholds and
// produces one report per CARD-typed column, in the order the server returned
// the columns. Non-CARD columns are skipped regardless of thresholds.
func EvaluateWIP(columns []Record, counts map[string]int) []ColumnReport {
	reports := make([]ColumnReport, 0, len(columns))
	for _, wrapped := range columns {
		col := Unwrap(wrapped, ColumnWrapper)
		if Str(col["type"]) != CardColumnType {
			continue
		}

		// Some boards emit boardTitle instead of columnId on columns; the
		// fallback order mirrors the upstream schema and must stay as is.
		id := col["columnId"]
		if id == nil {
			id = col["boardTitle"]
		}
		current := counts[Str(id)]

		minWIP := col["minWIP"]
		maxWIP := col["maxWIP"]

		// A zero threshold means no limit, same as an absent one.
		violations := []string{}
		if max, ok := threshold(maxWIP); ok && current > max {
			violations = append(violations, fmt.Sprintf("over max (%d/%d)", current, max))
		}
		if min, ok := threshold(minWIP); ok && current < min {
			violations = append(violations, fmt.Sprintf("under min (%d/%d)", current, min))
		}

		reports = append(reports, ColumnReport{
			ColumnID:     id,
			ColumnTitle:  col["title"],
			ColumnState:  col["columnState"],
			CurrentCards: current,
			MinWIP:       minWIP,
			MaxWIP:       maxWIP,
			Violations:   violations,
		})
	}
	return reports
}

// threshold converts a decoded WIP limit to an int. Returns false when the
// limit is absent or zero (no limit).
func threshold(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), val != 0
	case int:
		return val, val != 0
	default:
		return 0, false
	}
}
