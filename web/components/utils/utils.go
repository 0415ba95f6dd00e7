package utils

import twmerge "github.com/Oudwins/tailwind-merge-go"

// TwMerge combines Tailwind classes, later classes overriding conflicting earlier ones.
func TwMerge(classes ...string) string {
	return twmerge.Merge(classes...)
}

// If returns value when cond is true.
func If(cond bool, value string) string {
	if cond {
		return value
	}
	return ""
}
