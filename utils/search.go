package utils

import "strings"

// MatchesSearch reports whether any of the fields contains the term,
// case-insensitively. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesStatus compares a status filter against a value. The sentinel "all"
// (or an empty filter) matches every status.
func MatchesStatus(filter, status string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == "all" {
		return true
	}
	return strings.EqualFold(filter, strings.TrimSpace(status))
}
