// Package listword recognizes words that start a markdown list item.
package listword

// IsListWord reports whether word, standing at the start of a line,
// would open a list item: a bullet ("*", "-", "+") or an ordered
// marker made of one or more ASCII digits and a "." or ")".
func IsListWord(word string) bool {
	switch word {
	case "*", "-", "+":
		return true
	case "":
		return false
	}

	last := word[len(word)-1]
	if last != '.' && last != ')' {
		return false
	}

	digits := word[:len(word)-1]
	if digits == "" {
		return false
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}
