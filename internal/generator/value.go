package generator

import "regexp"

// bareNumericPattern decides which values are emitted without quotes.
// Only non-negative integers qualify; decimals, negative numbers, and dates
// are all treated as text.
var bareNumericPattern = regexp.MustCompile(`^\d+$`)

// isBareNumeric is the type-inference policy: a value matching ^\d+$ is
// rendered as a bare SQL literal. Kept as an isolated function so a stricter
// typed-value model can replace it without touching statement assembly.
func isBareNumeric(value string) bool {
	return bareNumericPattern.MatchString(value)
}

// renderValue converts a raw field value into SQL literal text.
// Empty values render as NULL. Quoted values are NOT escaped: an embedded
// single quote malforms the statement. The scripts are for operator review,
// not for feeding untrusted input to a database.
func renderValue(value string) string {
	if value == "" {
		return "NULL"
	}
	if isBareNumeric(value) {
		return value
	}
	return "'" + value + "'"
}
