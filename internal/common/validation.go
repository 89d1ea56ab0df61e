package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateFilename validates a target file path given on the command line or in config
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("filename contains a NUL byte: %q", name)
	}

	// A trailing separator names a directory, never a file
	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		return fmt.Errorf("filename must not end with a path separator: %s", name)
	}

	base := filepath.Base(name)
	if base == "." || base == ".." {
		return fmt.Errorf("filename must name a file, got: %s", name)
	}

	return nil
}

// ParsePermissions parses an octal permission string such as "0644" or "600"
func ParsePermissions(value string) (os.FileMode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("permissions cannot be empty")
	}

	perms, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal permissions: %s", value)
	}

	if perms > 0777 {
		return 0, fmt.Errorf("permissions must be between 0000 and 0777, got: %s", value)
	}

	// Created files must at least be readable and writable by the owner
	if perms&0600 != 0600 {
		return 0, fmt.Errorf("permissions must grant owner read and write, got: %s", value)
	}

	return os.FileMode(perms), nil
}
