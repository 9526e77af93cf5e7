package token

// Delimiter tables for the three tag kinds. TagKinds fixes the alternation
// order the scanner tries openers in; the order must stay deterministic so
// scans are reproducible.
var TagKinds = [...]Kind{Percent, Curly, Hash}

var openers = map[Kind][]byte{
	Percent: []byte("{%"),
	Curly:   []byte("{{"),
	Hash:    []byte("{#"),
}

var closers = map[Kind][]byte{
	Percent: []byte("%}"),
	Curly:   []byte("}}"),
	Hash:    []byte("#}"),
}

// Delimiters lists all six two-byte delimiter tokens: openers first, in
// alternation order, then the matching closers.
var Delimiters = [][]byte{
	[]byte("{%"), []byte("{{"), []byte("{#"),
	[]byte("%}"), []byte("}}"), []byte("#}"),
}

// Opener returns the two-byte opening token for a tag kind, or nil.
func (k Kind) Opener() []byte { return openers[k] }

// Closer returns the two-byte closing token for a tag kind, or nil.
func (k Kind) Closer() []byte { return closers[k] }
