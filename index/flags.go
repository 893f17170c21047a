package index

import "strings"

// Flags is the access and property bitmask of a declaration, using the
// standard class-file modifier bit assignments.
type Flags uint16

// Access and property flag bits
const (
	FlagPublic     Flags = 0x0001
	FlagPrivate    Flags = 0x0002
	FlagProtected  Flags = 0x0004
	FlagStatic     Flags = 0x0008
	FlagFinal      Flags = 0x0010
	FlagVolatile   Flags = 0x0040
	FlagTransient  Flags = 0x0080
	FlagInterface  Flags = 0x0200
	FlagAbstract   Flags = 0x0400
	FlagSynthetic  Flags = 0x1000
	FlagAnnotation Flags = 0x2000
	FlagEnum       Flags = 0x4000
)

// Has returns true if every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// IsStatic returns true if the static bit is set.
func (f Flags) IsStatic() bool {
	return f&FlagStatic != 0
}

// IsFinal returns true if the final bit is set.
func (f Flags) IsFinal() bool {
	return f&FlagFinal != 0
}

// IsSynthetic returns true if the synthetic bit is set.
func (f Flags) IsSynthetic() bool {
	return f&FlagSynthetic != 0
}

// visibility returns the visibility modifier keyword, or "" for
// package-private declarations.
func (f Flags) visibility() string {
	switch {
	case f&FlagPublic != 0:
		return "public"
	case f&FlagPrivate != 0:
		return "private"
	case f&FlagProtected != 0:
		return "protected"
	}
	return ""
}

// modifiers renders the modifier keywords used in diagnostic output.
func (f Flags) modifiers() string {
	var parts []string
	if v := f.visibility(); v != "" {
		parts = append(parts, v)
	}
	if f.IsStatic() {
		parts = append(parts, "static")
	}
	if f.IsFinal() {
		parts = append(parts, "final")
	}
	return strings.Join(parts, " ")
}
