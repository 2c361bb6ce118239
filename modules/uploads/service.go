package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDisallowedType is returned for uploads whose extension is not an
// accepted image type.
var ErrDisallowedType = errors.New("disallowed file type")

// ErrEmptyFilename is returned when sanitizing leaves nothing usable of the
// client-supplied filename.
var ErrEmptyFilename = errors.New("empty filename")

// allowedExtensions lists the accepted image extensions, lowercased.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Service stores uploaded images as plain files in a single directory.
// Files are served back by name with no access control, and uploading the
// same name again overwrites the previous file.
type Service struct {
	dir string
}

// NewService creates an upload service rooted at dir.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Dir returns the storage directory.
func (s *Service) Dir() string {
	return s.dir
}

// Save validates and writes an uploaded file, returning the stored name.
// The client filename is sanitized first; path components and anything
// outside [A-Za-z0-9._-] are dropped so the name can never escape the
// upload directory.
func (s *Service) Save(filename string, data []byte) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", fmt.Errorf("%w: %s", ErrDisallowedType, filepath.Ext(name))
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return name, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// directory components are stripped, spaces become underscores, any other
// character outside [A-Za-z0-9._-] is dropped, and leading dots are removed.
func SanitizeFilename(filename string) string {
	// Client paths may use either separator regardless of our OS.
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)

	var b strings.Builder
	b.Grow(len(filename))
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
