package extract

import (
	"strconv"
	"strings"
)

// LookupJSONPath navigates a decoded JSON document along a dotted path.
// A leading "$" or "$." is stripped, segments are separated by ".", and a
// "[n]" suffix addresses a list index. Non-numeric bracket content and any
// missing segment yield not-found.
func LookupJSONPath(doc any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")

	current := doc
	if path == "" {
		return current, true
	}
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			v, found := m[name]
			if !found {
				return nil, false
			}
			current = v
		}
		for _, idx := range indexes {
			list, isList := current.([]any)
			if !isList || idx < 0 || idx >= len(list) {
				return nil, false
			}
			current = list[idx]
		}
	}
	return current, true
}

// splitSegment parses "name[0][1]" into the name and its index chain.
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open == -1 {
		if strings.ContainsRune(segment, ']') {
			return "", nil, false
		}
		return segment, nil, true
	}

	name := segment[:open]
	rest := segment[open:]
	var indexes []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		close := strings.IndexByte(rest, ']')
		if close == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:close])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[close+1:]
	}
	return name, indexes, true
}
