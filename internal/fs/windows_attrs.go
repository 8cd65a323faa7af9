//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// getFileAttributes reads attributes for fullPath, retrying with the bare name
// when the joined path does not exist.
func getFileAttributes(fullPath, name string) (uint32, error) {
	candidates := []string{fullPath}
	if name != "" && name != fullPath {
		candidates = append(candidates, name)
	}

	lastErr := error(os.ErrInvalid)
	for _, target := range candidates {
		if target == "" {
			continue
		}
		ptr, err := syscall.UTF16PtrFromString(target)
		if err != nil {
			return 0, err
		}
		attrs, err := syscall.GetFileAttributes(ptr)
		if err == nil {
			return attrs, nil
		}
		lastErr = err
		if !os.IsNotExist(err) {
			break
		}
	}
	return 0, lastErr
}
