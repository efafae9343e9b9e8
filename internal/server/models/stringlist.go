package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings that tolerates being supplied as
// either a JSON array or a single comma-separated string. The latter is
// normalized by splitting on commas, trimming whitespace, and dropping empty
// segments, so `"Action, Drama"` decodes to ["Action","Drama"].
//
// It also implements driver.Valuer/sql.Scanner, storing itself as a JSON
// document in the database.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("string list: expected array or comma-separated string")
	}
	*l = SplitCommaList(s)
	return nil
}

// Value serializes the list as JSON for storage. A nil list stores as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan restores the list from its stored JSON representation.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("string list: cannot scan %T", src)
	}
}

// SplitCommaList splits a comma-separated string into its trimmed, non-empty
// segments.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
