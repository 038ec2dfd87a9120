package cli

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrParse reports an integer-list literal that could not be parsed.
var ErrParse = errors.New("invalid integer list")

// ParseIntList parses an integer-list literal into a slice.
//
// Accepted forms, all equivalent:
//
//	[-1, 1]
//	-1, 1
//	-1 1
//
// Brackets are optional but must be balanced. Elements may be
// separated by commas, whitespace, or both. Fractional or
// non-numeric tokens are rejected before any computation runs, as is
// the empty list.
func ParseIntList(input string) ([]int64, error) {
	s := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		s = strings.TrimSpace(s[1 : len(s)-1])
	case strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]"):
		return nil, errors.Wrapf(ErrParse, "unbalanced brackets in %q", input)
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.Wrapf(ErrParse, "empty list in %q", input)
	}

	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "token %q is not an integer", f)
		}
		values = append(values, v)
	}
	return values, nil
}
