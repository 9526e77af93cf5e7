package source

type (
	// FileID uniquely identifies a template buffer within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a loaded buffer.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the buffer was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single template buffer.
// Content is immutable after Add: every span produced by the scanner is a
// view into it, so the File must outlive all spans derived from it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a template.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
