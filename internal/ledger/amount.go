package ledger

import (
	"strconv"
	"strings"
)

// parseAmount parses a possibly comma-grouped yen amount such as "1,200" or
// "¥500,000". Blank fields and the "-" placeholder parse as zero, as does
// anything unparseable — malformed amounts are row-level noise, not errors.
func parseAmount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "¥", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
