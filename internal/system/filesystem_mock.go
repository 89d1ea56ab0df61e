package system

import (
	"sync"
)

// Operation names recorded by MockFileSystem
const (
	OpFileExists = "FileExists"
	OpReadText   = "ReadText"
	OpWriteFile  = "WriteFile"
	OpAppendFile = "AppendFile"
)

// MockFileSystem wraps a FileSystemManager for testing purposes.
// It records every call in order and can inject a failure per operation.
type MockFileSystem struct {
	base   FileSystemManager
	mu     sync.Mutex
	Calls  []string
	FailOn map[string]error
}

// NewMockFileSystem creates a new MockFileSystem delegating to base.
func NewMockFileSystem(base FileSystemManager) *MockFileSystem {
	return &MockFileSystem{
		base:   base,
		FailOn: make(map[string]error),
	}
}

func (m *MockFileSystem) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, op)
	return m.FailOn[op]
}

// FileExists records the call and delegates unless a failure is injected.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	if err := m.record(OpFileExists); err != nil {
		return false, err
	}
	return m.base.FileExists(path)
}

// ReadText records the call and delegates unless a failure is injected.
func (m *MockFileSystem) ReadText(path string) (string, error) {
	if err := m.record(OpReadText); err != nil {
		return "", err
	}
	return m.base.ReadText(path)
}

// WriteFile records the call and delegates unless a failure is injected.
func (m *MockFileSystem) WriteFile(path string, content []byte) error {
	if err := m.record(OpWriteFile); err != nil {
		return err
	}
	return m.base.WriteFile(path, content)
}

// AppendFile records the call and delegates unless a failure is injected.
func (m *MockFileSystem) AppendFile(path string, content []byte) error {
	if err := m.record(OpAppendFile); err != nil {
		return err
	}
	return m.base.AppendFile(path, content)
}
