package pagination

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Sort is one "field,direction" ordering requested by a client.
type Sort struct {
	Field string
	Desc  bool
}

// ParseSortFromRequest reads every ?sort=field[,asc|desc] parameter in order.
// Empty fields are skipped; the direction defaults to ascending.
func ParseSortFromRequest(c *fiber.Ctx) []Sort {
	var sorts []Sort
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		if s, ok := ParseSort(string(raw)); ok {
			sorts = append(sorts, s)
		}
	}
	return sorts
}

// ParseSort parses a single sort expression such as "id,desc".
func ParseSort(raw string) (Sort, bool) {
	parts := strings.Split(raw, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return Sort{}, false
	}

	s := Sort{Field: field}
	if len(parts) > 1 {
		s.Desc = strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
	}
	return s, true
}
