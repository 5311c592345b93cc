package prettier

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// parseFunc attempts one typed interpretation of a raw option value.
type parseFunc func(raw string) (any, bool)

// optionParsers are tried in order; the first success wins.
var optionParsers = []parseFunc{
	parseInt,
	parseBool,
}

// CoerceOptions converts raw inline option values to int, bool or string,
// preserving key order. A nil input yields nil.
func CoerceOptions(opts *orderedmap.OrderedMap[string, string]) *orderedmap.OrderedMap[string, any] {
	if opts == nil {
		return nil
	}

	out := orderedmap.New[string, any]()
	for pair := opts.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, coerceValue(pair.Value))
	}
	return out
}

func coerceValue(raw string) any {
	for _, parse := range optionParsers {
		if v, ok := parse(raw); ok {
			return v
		}
	}
	return raw
}

// parseInt accepts base-10 integers in the signed 32-bit range, with an
// optional sign and leading zeros.
func parseInt(raw string) (any, bool) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	return int(n), true
}

func parseBool(raw string) (any, bool) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, true
	case strings.EqualFold(raw, "false"):
		return false, true
	}
	return nil, false
}
