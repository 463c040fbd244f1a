package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	ShortPath Path
	FullPath  Path
}

// Source represents a Go source file queued for mutation.
type Source struct {
	Origin  *File
	Package Path // directory holding the package the file belongs to
}
