// Package csvutil provides low-level tokenizing for the CSV exports this
// application ingests. The exports come from a Windows-leaning aggregation
// service, so the tokenizer has to cope with UTF-8 BOMs, CRLF and lone CR
// line endings, and quoted fields containing commas.
package csvutil

import "strings"

// utf8BOM is the byte-order mark some exports prepend to the first line.
const utf8BOM = "\ufeff"

// SplitLines normalizes line endings and splits raw file text into logical lines.
// A leading BOM is stripped. Trailing empty lines are dropped.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, utf8BOM)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SplitFields splits a single CSV line into trimmed fields.
// It walks the line character by character, toggling an in-quotes state on '"',
// treating a doubled quote inside a quoted field as an escaped quote, and
// splitting on unquoted commas only.
func SplitFields(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// Rows tokenizes a whole file into field slices, one per logical line.
func Rows(text string) [][]string {
	lines := SplitLines(text)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, SplitFields(line))
	}
	return rows
}
