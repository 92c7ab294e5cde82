//go:build !windows

package locator

import "io/fs"

// hasExecutePermission checks the execute bits on Unix.
func hasExecutePermission(info fs.FileInfo) bool {
	return info.Mode().Perm()&0111 != 0
}
