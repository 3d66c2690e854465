package numberutils

import (
	"strconv"
	"strings"
)

// ToID converts the given string to an auto-increment identifier.
// Zero and negative numbers are valid input and map to 0, which no record carries.
func ToID(s string) (uint, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, nil
	}
	return uint(value), nil
}
