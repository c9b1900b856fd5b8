// Package util provides utility functions for reading the environment,
// parsing request parameters and building GitHub query strings.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// ParsePositiveInt parses a strictly positive base-10 integer.
// Empty strings, zero, negative numbers, fractions and trailing garbage are rejected.
func ParsePositiveInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("value is required")
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

// BuildSearchQuery joins qualifiers into a GitHub search query of the form
// key1:val1+key2:val2. Keys and values are query-escaped with spaces written as %20,
// so a literal '+' only ever appears as the separator.
func BuildSearchQuery(qualifiers [][2]string) string {
	items := make([]string, 0, len(qualifiers))
	for _, q := range qualifiers {
		items = append(items, escapeQualifier(q[0])+":"+escapeQualifier(q[1]))
	}
	return strings.Join(items, "+")
}

func escapeQualifier(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// EscapeRepoPath path-escapes each segment of an owner/name repository identifier
// while keeping the separating slashes.
func EscapeRepoPath(fullName string) string {
	segments := strings.Split(strings.Trim(fullName, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
