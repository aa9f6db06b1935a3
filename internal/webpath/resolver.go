// Package webpath resolves a detail-page document id from the request path.
// The routed parameter is the primary source; two fallbacks (a regex over
// the path, then a raw segment split) cover statically exported pages whose
// entries were unknown at build time and so never got a routed parameter.
package webpath

import (
	"regexp"
	"strings"
)

// Resolver is one strategy for extracting an id. Strategies are tried in
// order; the first non-empty result wins.
type Resolver func() string

// Resolve runs the chain.
func Resolve(resolvers ...Resolver) string {
	for _, r := range resolvers {
		if id := strings.TrimSpace(r()); id != "" {
			return id
		}
	}
	return ""
}

// FromParam wraps an already-extracted route parameter.
func FromParam(param string) Resolver {
	return func() string { return param }
}

// FromPathRegex matches the segment after the given section name, e.g.
// section "houses" extracts "baan-01" from "/houses/baan-01/".
func FromPathRegex(path, section string) Resolver {
	re := regexp.MustCompile(`/` + regexp.QuoteMeta(section) + `/([^/]+)/?$`)
	return func() string {
		m := re.FindStringSubmatch(path)
		if len(m) < 2 {
			return ""
		}
		return m[1]
	}
}

// FromPathSplit takes the last non-empty path segment as the id, skipping
// the section name itself.
func FromPathSplit(path, section string) Resolver {
	return func() string {
		segments := strings.Split(strings.Trim(path, "/"), "/")
		for i := len(segments) - 1; i >= 0; i-- {
			if segments[i] != "" && segments[i] != section {
				return segments[i]
			}
		}
		return ""
	}
}
