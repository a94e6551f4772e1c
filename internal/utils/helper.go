package utils

import "strconv"

// ParseID parses a numeric path parameter into a surrogate key.
func ParseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
