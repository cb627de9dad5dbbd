package swap

import (
	"strconv"
	"strings"
)

// TenorToMonths converts a tenor token such as "5Y", "3M", "2W" or "90D"
// into an approximate number of months. Days divide by 30 and weeks by 4,
// both truncating; a missing or unknown unit letter is read as months. An
// empty tenor or one without a leading number yields 0. The conversion is
// an approximation, not calendar arithmetic.
func TenorToMonths(tenor string) int {
	if tenor == "" {
		return 0
	}

	upper := strings.ToUpper(tenor)

	i := 0
	for i < len(upper) && upper[i] >= '0' && upper[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0 // no number found
	}

	num, err := strconv.Atoi(upper[:i])
	if err != nil {
		return 0
	}

	unit := byte('M')
	if i < len(upper) {
		unit = upper[i]
	}

	switch unit {
	case 'D':
		return num / 30
	case 'W':
		return num / 4
	case 'M':
		return num
	case 'Y':
		return num * 12
	default:
		return num
	}
}
