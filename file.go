package wininf

import (
	"io/fs"
	"os"
)

// FileSystem is an abstraction for file system operations. It allows
// testing ParseFile against in-memory file systems.
type FileSystem interface {
	// Open opens the file at path for reading.
	Open(path string) (fs.File, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open opens the file at path.
func (OSFS) Open(path string) (fs.File, error) {
	return os.Open(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
