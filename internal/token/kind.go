package token

// Kind represents the category of a template span.
type Kind uint8

const (
	// Invalid indicates an erroneous span.
	Invalid Kind = iota
	// EOF marks the end of the template input.
	EOF

	// Plain represents a run of literal text containing no delimiter tokens.
	Plain
	// Percent represents a {% %} tag.
	Percent
	// Curly represents a {{ }} tag.
	Curly
	// Hash represents a {# #} tag.
	Hash
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Plain:
		return "Plain"
	case Percent:
		return "TagPercent"
	case Curly:
		return "TagCurly"
	case Hash:
		return "TagHash"
	}
	return "Unknown"
}

// IsTag reports whether the kind is one of the three delimited tag kinds.
func (k Kind) IsTag() bool {
	switch k {
	case Percent, Curly, Hash:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the kind marks end of input.
func (k Kind) IsEOF() bool { return k == EOF }
