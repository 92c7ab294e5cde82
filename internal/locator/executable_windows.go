//go:build windows

package locator

import "io/fs"

// hasExecutePermission is existence-based on Windows; there is no execute bit
// to inspect and .exe files are runnable by convention.
func hasExecutePermission(info fs.FileInfo) bool {
	return info.Mode().IsRegular()
}
