package scopefilter

import (
	"fmt"
	"sort"
	"strings"
)

// RenderWhere renders a constraint map into a SQL WHERE fragment with
// positional placeholders, for appending to a caller's base query. Keys are
// emitted in sorted order so the output is deterministic. An empty constraint
// map yields an empty fragment.
//
// The fragment starts with " AND " when prefixAnd is true, for queries that
// already have a WHERE clause, and with " WHERE " otherwise.
func RenderWhere(constraints map[string]any, prefixAnd bool) (string, []any) {
	if len(constraints) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(constraints))
	for k := range constraints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	clauses := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		clauses[i] = fmt.Sprintf("%s = ?", k)
		args[i] = constraints[k]
	}

	prefix := " WHERE "
	if prefixAnd {
		prefix = " AND "
	}
	return prefix + strings.Join(clauses, " AND "), args
}
