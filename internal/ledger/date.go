package ledger

import (
	"fmt"
	"regexp"
	"strconv"
)

// jpDatePattern matches the long-form dates the aggregation service exports,
// e.g. "2024年03月05日(火)". The weekday suffix is ignored.
var jpDatePattern = regexp.MustCompile(`^(\d{4})年(\d{2})月(\d{2})日`)

// NormalizeDate converts a long-form Japanese date into an ISO calendar date
// plus its (year, month) key. It returns "" (and zero year/month) when the
// input does not match; callers treat that as "skip this row". Dates are
// wall-clock calendar dates with no timezone.
func NormalizeDate(s string) (iso string, year, month int) {
	m := jpDatePattern.FindStringSubmatch(s)
	if m == nil {
		return "", 0, 0
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), year, month
}

// isDateField reports whether a field looks like an exported date. The asset
// parser uses this to tell account-header rows apart from data rows.
func isDateField(s string) bool {
	return jpDatePattern.MatchString(s)
}
