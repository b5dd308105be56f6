package number

import (
	"fmt"
)

// ParseAll parses every string with parse, reporting the first failure with
// its position.
func ParseAll[N any](ss []string, parse func(string) (N, error)) ([]N, error) {
	out := make([]N, len(ss))
	for i, s := range ss {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("number %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
