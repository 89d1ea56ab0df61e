package system

// FileSystemManager defines the file operations the file mode demo relies on.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	FileExists(path string) (bool, error)
	ReadText(path string) (string, error)
	WriteFile(path string, content []byte) error
	AppendFile(path string, content []byte) error
}

var _ FileSystemManager = (*FileSystem)(nil)
