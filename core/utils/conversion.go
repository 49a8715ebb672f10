package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// countSeparators are stripped from string counts before parsing,
// e.g. "10,000,000+" or "1 234 567".
var countSeparators = strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "", "+", "")

// ToInt converts various types to int using explicit type switching.
// Strings may carry thousands separators. Anything unparseable yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
		return 0
	case string:
		return parseCount(v)
	case []byte:
		return parseCount(string(v))
	default:
		return parseCount(fmt.Sprintf("%v", v))
	}
}

func parseCount(s string) int {
	i, err := strconv.Atoi(countSeparators.Replace(strings.TrimSpace(s)))
	if err != nil {
		return 0
	}
	return i
}

// ToString converts various types to string. A nil value yields "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
