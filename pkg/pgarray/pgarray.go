// Package pgarray encodes and decodes Postgres-style text array literals.
//
// Multi-select inquiry fields (property configurations, tour types) are
// persisted in text columns using the array literal convention the legacy
// storage layer established, e.g. {"2BHK","3BHK"}. Clients send native JSON
// arrays; the encoding happens server-side only.
package pgarray

import (
	"fmt"
	"strings"
)

// Encode serializes values as a Postgres array literal.
// An empty or nil slice encodes as {}.
func Encode(values []string) string {
	if len(values) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escape(v))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

// Decode parses a Postgres array literal back into its elements.
// {} decodes to an empty slice, never nil.
func Decode(literal string) ([]string, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" || literal == "{}" {
		return []string{}, nil
	}
	if !strings.HasPrefix(literal, "{") || !strings.HasSuffix(literal, "}") {
		return nil, fmt.Errorf("malformed array literal: %q", literal)
	}

	inner := literal[1 : len(literal)-1]
	values := []string{}
	var current strings.Builder
	inQuotes := false
	escaped := false

	for _, r := range inner {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped || inQuotes {
		return nil, fmt.Errorf("unterminated quote in array literal: %q", literal)
	}
	values = append(values, current.String())

	return values, nil
}

func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
