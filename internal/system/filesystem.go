package system

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// DefaultFilePerms are the permissions used when a write or append creates the file
const DefaultFilePerms os.FileMode = 0644

// ErrInvalidUTF8 is returned when a file's content is not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// FileSystem handles file access in read, write (truncating) and append modes
type FileSystem struct {
	fs    afero.Fs
	perms os.FileMode
}

// NewFileSystem creates a new FileSystem backed by the operating system
func NewFileSystem() *FileSystem {
	return NewFileSystemWithFs(afero.NewOsFs())
}

// NewFileSystemWithFs creates a FileSystem on top of any afero backend (useful for testing)
func NewFileSystemWithFs(fs afero.Fs) *FileSystem {
	return &FileSystem{
		fs:    fs,
		perms: DefaultFilePerms,
	}
}

// SetPermissions sets the permissions applied to files created by WriteFile or AppendFile
func (fs *FileSystem) SetPermissions(perms os.FileMode) {
	fs.perms = perms
}

// FileExists checks if a file exists. A path that cannot resolve (a parent
// component is a regular file, or a symlink loop) does not exist either.
func (fs *FileSystem) FileExists(path string) (bool, error) {
	_, err := fs.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ELOOP) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// ReadText opens a file in read mode and returns its entire content as UTF-8 text
func (fs *FileSystem) ReadText(path string) (string, error) {
	info, err := fs.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s exists but is a directory", path)
	}

	data, err := afero.ReadFile(fs.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to decode %s: %w", path, ErrInvalidUTF8)
	}

	return string(data), nil
}

// WriteFile opens a file in write mode, truncating it or creating it if absent,
// and writes content. The file is synced and closed before returning.
func (fs *FileSystem) WriteFile(path string, content []byte) error {
	return fs.writeWithFlags(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, content)
}

// AppendFile opens a file in append mode, creating it if absent, and writes
// content after any existing data. The file is synced and closed before returning.
func (fs *FileSystem) AppendFile(path string, content []byte) error {
	return fs.writeWithFlags(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, content)
}

func (fs *FileSystem) writeWithFlags(path string, flag int, content []byte) error {
	file, err := fs.fs.OpenFile(path, flag, fs.perms)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}

	// Sync so the next open sees the data even on filesystems with lazy writeback
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	// Explicitly check close error to prevent data loss
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// RemoveFile removes a file. A file that does not exist is not an error.
func (fs *FileSystem) RemoveFile(path string) error {
	err := fs.fs.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("failed to remove file %s: %w", path, err)
}

// GetFileSize returns the size of a file in bytes
func (fs *FileSystem) GetFileSize(path string) (int64, error) {
	info, err := fs.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}

// GetPermissions returns the permissions of a file
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := fs.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}
