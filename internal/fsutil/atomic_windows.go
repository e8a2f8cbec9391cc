//go:build windows

package fsutil

import "os"

// writeFileAtomic falls back to a plain write; renameio does not support Windows.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
