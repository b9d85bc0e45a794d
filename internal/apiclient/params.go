package apiclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Params is a raw filter set as the screens hold it: values may be strings
// (possibly the 'all' sentinel), numbers or booleans.
type Params map[string]interface{}

// intKeys are the non-suffix keys that must be sent as integers.
var intKeys = map[string]bool{
	"page":     true,
	"pageSize": true,
	"level":    true,
}

// NormalizeParams turns a raw filter set into the clean query set actually
// sent to the backend:
//
//   - values that are nil, "", or the "all" sentinel are omitted entirely
//     (omission means "no filter")
//   - keys ending in "_id", plus page/pageSize/level, are parsed as
//     integers; non-numeric values are dropped silently
//   - is_active is coerced to a boolean (true or "true" count as true)
//   - everything else passes through as a string
//
// The function is pure and idempotent: normalizing its own output returns
// the same map.
func NormalizeParams(raw Params) Params {
	out := Params{}
	for key, val := range raw {
		if val == nil {
			continue
		}
		s := fmt.Sprintf("%v", val)
		if s == "" || s == "all" {
			continue
		}

		switch {
		case strings.HasSuffix(key, "_id"), intKeys[key]:
			n, err := strconv.Atoi(s)
			if err != nil {
				continue // non-numeric id: not sent
			}
			out[key] = n
		case key == "is_active":
			out[key] = val == true || s == "true"
		default:
			out[key] = s
		}
	}
	return out
}

// encodeQuery renders normalized params as a URL query string.
func encodeQuery(params Params) string {
	q := url.Values{}
	for key, val := range params {
		q.Set(key, fmt.Sprintf("%v", val))
	}
	return q.Encode()
}
