package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSalary is returned when salary input is not a finite number.
var ErrInvalidSalary = errors.New("salary must be a number")

// ParseSalary parses user input into a salary.
// Surrounding whitespace is ignored. NaN and infinities are rejected
// because they cannot be written to the JSON file.
func ParseSalary(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidSalary)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSalary, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSalary, raw)
	}
	return v, nil
}

// FormatSalary renders a salary with the shortest exact representation,
// always keeping one decimal place (1000 -> "1000.0").
func FormatSalary(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
