package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem is the I/O seam for writing a plan
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// OSFileSystem returns the FileSystem backed by the os package
func OSFileSystem() FileSystem {
	return &osFileSystem{}
}

// Apply creates every directory, then writes every artifact, under root.
// The first failure stops the run; files already written stay on disk.
func Apply(p *Plan, fs FileSystem, root string) error {
	for _, dir := range p.Directories {
		target := filepath.Join(root, filepath.FromSlash(dir))
		if err := fs.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", target, err)
		}
	}

	for _, a := range p.Artifacts {
		target := filepath.Join(root, filepath.FromSlash(a.Path))
		if err := fs.WriteFile(target, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}
	return nil
}
