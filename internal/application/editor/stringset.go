package editor

import "strings"

// AddToSet appends value unless it is blank or already present. Matching is
// exact and case-sensitive; the stored value is not trimmed.
func AddToSet(set []string, value string) []string {
	out := append([]string{}, set...)
	if strings.TrimSpace(value) == "" {
		return out
	}
	for _, s := range set {
		if s == value {
			return out
		}
	}
	return append(out, value)
}

func RemoveFromSet(set []string, value string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != value {
			out = append(out, s)
		}
	}
	return out
}
