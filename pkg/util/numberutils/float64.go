package numberutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// NaN and infinities are rejected.
func ToFloat64WithError(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not a finite number", str)
	}
	return value, nil
}
