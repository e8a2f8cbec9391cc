//go:build !windows

package fsutil

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic writes via temp file and rename so readers never see a partial file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
