package index

import "strings"

// Name is a dot-separated fully qualified type name, e.g.
// "java.lang.annotation.Repeatable". The zero value is the empty name.
type Name string

// String returns the fully qualified form.
func (n Name) String() string {
	return string(n)
}

// Local returns the simple name, the segment after the last dot.
func (n Name) Local() string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Package returns the package prefix of the name, or "" for an unqualified name.
func (n Name) Package() string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return ""
}
