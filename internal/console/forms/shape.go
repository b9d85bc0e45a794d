package forms

import "strings"

// Payload shaping helpers shared by the forms. Controlled form inputs carry
// strings; the payload substitutes nil for empty optionals so the backend
// sees explicit nulls, never empty strings.

func trimmed(s string) string { return strings.TrimSpace(s) }

// strOrNil trims and returns nil for empty optional fields.
func strOrNil(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func upperOrNil(s string) interface{} {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return s
}

// intOrNil returns nil for the zero "unselected" value.
func intOrNil(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}

// Edit-mode defaults: every nullable server field maps through one of these
// so a populated draft never carries an absent value.

func strDefault(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intDefault(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
