package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// snapshotNameRegex matches snapshot names: letters, digits, dots, dashes
// and underscores, starting with a letter or digit.
var snapshotNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// MaxSnapshotNameLength bounds snapshot names.
const MaxSnapshotNameLength = 128

// ValidateSnapshotName validates the name of a golden snapshot.
// Names double as file names in the file store and as keys in MongoDB, so
// the rules are those of [ValidatePath] plus a restricted character set
// without separators.
func ValidateSnapshotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "snapshot name cannot be empty")
	}

	if len(name) > MaxSnapshotNameLength {
		return New(ErrCodeInvalidPath, "snapshot name too long (max %d characters)", MaxSnapshotNameLength)
	}

	if err := ValidatePath(name); err != nil {
		return Wrap(ErrCodeInvalidPath, err, "invalid snapshot name %q", name)
	}

	if !snapshotNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPath, "invalid snapshot name %q", name)
	}

	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
