package entry

import (
	"fmt"
	"strconv"
)

const (
	// FirstID is the id given to the first entry of an empty journal
	FirstID = 1
	// MaxID is the highest id an entry may receive
	MaxID = 99999
)

// NextID returns the id for a new entry: FirstID for an empty journal,
// otherwise the highest numeric id plus one. Ids that do not parse as
// numbers are ignored. width > 0 zero-pads the result.
func NextID(existing []Entry, width int) (string, error) {
	maxID := 0
	for _, e := range existing {
		n, ok := NumericID(e.ID)
		if ok && n > maxID {
			maxID = n
		}
	}

	if maxID >= MaxID {
		return "", fmt.Errorf("%w: delete an entry before adding a new one (max id %d)", ErrMaximumEntriesReached, MaxID)
	}

	next := FirstID
	if maxID > 0 {
		next = maxID + 1
	}
	return FormatID(next, width), nil
}

// FormatID formats n as a decimal id, zero-padded to width when width > 0
func FormatID(n, width int) string {
	if width > 0 {
		return fmt.Sprintf("%0*d", width, n)
	}
	return strconv.Itoa(n)
}

// NumericID parses an id ("7" or "00007") into its numeric value
func NumericID(id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SameID reports whether two ids refer to the same entry, so "7" matches "00007"
func SameID(a, b string) bool {
	if a == b {
		return true
	}
	na, okA := NumericID(a)
	nb, okB := NumericID(b)
	return okA && okB && na == nb
}
