// Package fs provides file-based storage for generated declarations.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/javadts"
)

// Ext is the extension of written declaration files.
const Ext = ".d.ts"

// Ensure FileStore implements javadts.DeclarationStore at compile time.
var _ javadts.DeclarationStore = (*FileStore)(nil)

// FileStore implements javadts.DeclarationStore with atomic update semantics.
// Declarations are saved to a temporary directory, then moved into the
// output directory on Commit. Files already in the output directory that
// were not saved again are left in place.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the declaration to the temporary directory.
func (s *FileStore) Save(ctx context.Context, d *javadts.Declaration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := FileName(d)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), name), []byte(d.String()), 0644)
}

// Commit moves saved declarations into the output directory.
func (s *FileStore) Commit() error {
	entries, err := os.ReadDir(s.tempDir())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Rename(filepath.Join(s.tempDir(), e.Name()), filepath.Join(s.finalDir(), e.Name())); err != nil {
			return err
		}
	}

	return os.RemoveAll(s.tempDir())
}

// Abort discards saved declarations.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FileName returns the file name for a declaration: the lookup key when
// present (e.g. "org.bukkit.Art.d.ts"), otherwise the declared name.
// Generic parameters are dropped.
func FileName(d *javadts.Declaration) (string, error) {
	name := d.Name
	if d.Lookup != nil && d.Lookup.Key != "" {
		name = d.Lookup.Key
	}
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", javadts.Errorf(javadts.EINVALID, "invalid declaration file name %q", name)
	}
	return name + Ext, nil
}
