package parse

import (
	"fmt"
	"strings"
)

// unfold joins continuation lines (RFC 5545 §3.1): any line beginning with
// a space or tab is a continuation of the previous line, with that leading
// character stripped.
func unfold(input string) []string {
	raw := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitLine parses one content line into its property name, parameters,
// and value. Property names may carry parameters after a semicolon, e.g.
// DTSTART;TZID=America/New_York:20250601T090000.
func splitLine(line string) (name string, params map[string]string, value string, err error) {
	colon := findUnquotedColonIndex(line)
	if colon == -1 {
		return "", nil, "", fmt.Errorf("%w: %s", ErrInvalidPropertyLine, line)
	}
	head := line[:colon]
	value = line[colon+1:]

	semi := strings.IndexByte(head, ';')
	if semi == -1 {
		return strings.ToUpper(head), nil, value, nil
	}
	name = strings.ToUpper(head[:semi])
	params = parseParams(head[semi+1:])
	return name, params, value, nil
}

// parseParams splits a ";"-delimited parameter string into a name->value
// map, respecting quoted values (which may themselves contain ";" or ":").
func parseParams(s string) map[string]string {
	params := make(map[string]string)
	for _, part := range splitRespectingQuotes(s, ';') {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		params[strings.ToUpper(key)] = value
	}
	return params
}

func splitRespectingQuotes(s string, sep byte) []string {
	var out []string
	var current strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			current.WriteByte(c)
		case c == sep && !inQuotes:
			out = append(out, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

func findUnquotedColonIndex(line string) int {
	inQuotes := false
	for i, c := range line {
		switch c {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// csv splits a comma-separated property value (CATEGORIES, RESOURCES).
func csv(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
