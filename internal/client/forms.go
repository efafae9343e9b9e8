package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// Interactive rating input is capped at 5 stars even though stored records
// may carry up to 10.
const FormRatingMax = 5

// ParseListField turns a comma-separated form value into a normalized list.
func ParseListField(raw string) models.StringList {
	return models.StringList(models.SplitCommaList(raw))
}

// JoinListField renders a list back into the comma-separated form value.
func JoinListField(list models.StringList) string {
	return strings.Join(list, ", ")
}

// ParseRatingField parses an interactive rating input. Empty means unrated.
func ParseRatingField(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("rating must be a number")
	}
	if rating < 1 || rating > FormRatingMax {
		return 0, fmt.Errorf("rating must be between 1 and %d", FormRatingMax)
	}
	return rating, nil
}
