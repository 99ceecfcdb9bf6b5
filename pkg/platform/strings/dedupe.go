// Package strings provides string list helpers for configuration parsing.
package strings

import (
	"strings"
)

// SplitList splits a comma separated value, trimming whitespace and dropping
// empty and duplicate elements. Order is preserved.
//
//	SplitList(" kafka-1:9092, ,kafka-2:9092,kafka-1:9092")
//	// []string{"kafka-1:9092", "kafka-2:9092"}
func SplitList(s string) []string {
	return dedupe(strings.Split(s, ","), strings.TrimSpace)
}

// SplitListLower is SplitList with case-insensitive deduplication; elements are
// returned lowercased.
func SplitListLower(s string) []string {
	return dedupe(strings.Split(s, ","), func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	})
}

func dedupe(values []string, normalize func(string) string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = normalize(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
