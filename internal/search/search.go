// Package search implements line matching over in-memory text content.
//
// Results are substrings of the content passed in, so they share its
// backing storage and keep the original casing.
package search

import "strings"

// MatchFunc returns the lines of content that match query, in order.
type MatchFunc func(query, content string) []string

// Matcher selects the matching operation for the case mode
func Matcher(ignoreCase bool) MatchFunc {
	if ignoreCase {
		return SearchCaseInsensitive
	}
	return Search
}

// Search returns every line of content containing query as an exact substring.
// An empty query matches every line.
func Search(query, content string) []string {
	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with both query and line lowercased
// before comparison. Returned lines are not lowercased.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)

	var results []string
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Lines splits content on "\n", dropping a "\r" directly before it.
// A final terminator does not yield an empty trailing line, and empty
// content yields no lines.
func Lines(content string) []string {
	var lines []string
	for len(content) > 0 {
		line, rest, found := strings.Cut(content, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		content = rest
	}
	return lines
}
