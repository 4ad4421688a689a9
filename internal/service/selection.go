package service

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoValidSelection is returned when the input resolves to no option
// at all: no digits, or every number out of range.
var ErrNoValidSelection = errors.New("no valid selection")

var digitRuns = regexp.MustCompile(`\d+`)

// resolveSelections turns raw input into a joined answer string for a
// multi-select question. Every maximal digit run is read as a 1-based
// index into options, in order of appearance; out-of-range numbers are
// dropped silently. Duplicates collapse to the first occurrence.
func resolveSelections(input string, options []string) (string, error) {
	var picked []string
	seen := make(map[string]struct{})

	for _, run := range digitRuns.FindAllString(input, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			// Digit run too long for an int; cannot be in range anyway.
			continue
		}
		if n < 1 || n > len(options) {
			continue
		}

		label := options[n-1]
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		picked = append(picked, label)
	}

	if len(picked) == 0 {
		return "", ErrNoValidSelection
	}

	return strings.Join(picked, ", "), nil
}
