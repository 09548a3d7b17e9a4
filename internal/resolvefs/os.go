package resolvefs

import "os"

// OS resolves IsFile/ReadFile directly against the local disk.
type OS struct{}

// IsFile reports whether path names a regular file (not a directory).
func (OS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile returns the local file's content.
func (OS) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
