package kanban

import (
	"strings"
)

// Criteria defines client-side card filters.
// All filters are ANDed together - a card must match ALL criteria to pass.
type Criteria struct {
	Label    string // Case-insensitive match on label, empty = no filter
	Owner    string // Case-insensitive match on owner email, empty = no filter
	Column   string // Case-insensitive match on column title, empty = no filter
	Priority string // Stringified match on priority, empty = no filter
	Blocked  bool   // Keep only cards whose blocked field is set, false = no filter
	Query    string // Case-insensitive substring over title or description, empty = no filter
}

// Matches returns true if the card matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
// Absent card fields compare as the empty string.
func (c *Criteria) Matches(card Record) bool {
	if c.Label != "" && !strings.EqualFold(Str(card.CardField("label")), c.Label) {
		return false
	}
	if c.Owner != "" && !strings.EqualFold(Str(card.CardField("owner")), c.Owner) {
		return false
	}
	if c.Column != "" && !strings.EqualFold(Str(card.CardField("columnTitle")), c.Column) {
		return false
	}

	// Priority comparison is stringified on both sides, not numeric
	if c.Priority != "" && Str(card.CardField("priority")) != c.Priority {
		return false
	}

	if c.Blocked && !Truthy(card.CardField("blocked")) {
		return false
	}

	if c.Query != "" {
		q := strings.ToLower(c.Query)
		title := strings.ToLower(Str(card.CardField("title")))
		desc := strings.ToLower(Str(card.CardField("description")))
		if !strings.Contains(title, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	return true
}

// Apply returns the cards matching all criteria, preserving input order.
func (c *Criteria) Apply(cards []Record) []Record {
	matched := make([]Record, 0, len(cards))
	for _, card := range cards {
		if c.Matches(card) {
			matched = append(matched, card)
		}
	}
	return matched
}

// HasFilters returns true if any filters are active.
// Used to guard operations that must not run unfiltered.
func (c *Criteria) HasFilters() bool {
	return c.Label != "" ||
		c.Owner != "" ||
		c.Column != "" ||
		c.Priority != "" ||
		c.Blocked ||
		c.Query != ""
}
