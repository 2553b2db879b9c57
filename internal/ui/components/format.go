package components

import (
	"fmt"
	"strconv"
)

// FormatHours renders an hour count for display, dropping a trailing ".0".
func FormatHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	return fmt.Sprintf("%s hours", s)
}
