package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	// FileNormalizedCRLF: CRLF or lone CR was folded into LF.
	FileNormalizedCRLF
	FileNormalizedNFC
	// FileModule marks ES module sources (.mjs); module code is always strict.
	FileModule
)

// File captures metadata and content for a single JavaScript source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the start offset of every line after the first.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

// IsModule reports whether f is parsed as an ES module.
func (f *File) IsModule() bool { return f.Flags&FileModule != 0 }
