// utils/dates.go
package utils

import (
	"encoding/json"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDateList normalizes the availability dates a service form can
// carry: repeated form values, one JSON-encoded array, or one
// comma-separated string. Output is an order-preserving, deduplicated
// list of valid YYYY-MM-DD dates; blanks and unparseable entries are
// dropped.
func ParseDateList(values []string) []string {
	var raw []string
	if len(values) == 1 {
		raw = splitDateString(values[0])
	} else {
		raw = values
	}

	seen := make(map[string]bool, len(raw))
	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		if _, err := time.Parse(DateLayout, v); err != nil {
			continue
		}
		seen[v] = true
		dates = append(dates, v)
	}
	return dates
}

func splitDateString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return decoded
		}
		// fall through: a malformed JSON blob still gets the comma split
	}
	return strings.Split(s, ",")
}
