package config

// DefaultTargetFile is the target filename used when neither a flag nor the configuration names one
const DefaultTargetFile = "demo_target.txt"

// EnvPrefix is prepended to configuration keys when reading environment overrides
// (TARGET_FILE is read from FILEMODES_TARGET_FILE)
const EnvPrefix = "FILEMODES"

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Target configuration
	KeyTargetFile = "TARGET_FILE"
	KeyFilePerms  = "FILE_PERMS" // Octal permissions for files created by write/append

	// Output configuration
	KeyNoColor = "NO_COLOR"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyTargetFile: DefaultTargetFile,
	KeyFilePerms:  "0644",
	KeyNoColor:    "false",
}
