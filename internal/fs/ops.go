package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CreatePath creates name inside dir. A trailing path separator creates a
// directory; otherwise an empty file. Missing parents are created either way.
// The returned path is the created target.
func CreatePath(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	isDir := strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(os.PathSeparator))
	target := filepath.Join(dir, name)

	if isDir {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return "", wrapErr("create", target, err)
		}
		return target, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", wrapErr("create", target, err)
	}
	f, err := os.OpenFile(target, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", wrapErr("create", target, err)
	}
	if err := f.Close(); err != nil {
		return "", wrapErr("create", target, err)
	}
	return target, nil
}

// RenamePath renames oldPath to newName within the same parent directory and
// refuses to overwrite an existing entry.
func RenamePath(oldPath, newName string) (string, error) {
	if strings.TrimSpace(newName) == "" {
		return "", ErrEmptyName
	}
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == oldPath {
		return newPath, nil
	}
	if _, err := os.Lstat(oldPath); err != nil {
		return "", wrapErr("rename", oldPath, err)
	}
	if _, err := os.Lstat(newPath); err == nil {
		return "", invalidInput("rename", newPath, iofs.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return "", wrapErr("rename", newPath, err)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", wrapErr("rename", oldPath, err)
	}
	return newPath, nil
}

// UniqueDestination returns a path inside dir for name that does not exist yet:
// the name itself, then stem_1.ext, stem_2.ext and so on. Directories and
// dot-files without an extension take the suffix at the end of the name.
func UniqueDestination(dir, name string, isDir bool) string {
	candidate := filepath.Join(dir, name)
	if !exists(candidate) {
		return candidate
	}

	stem, ext := name, ""
	if !isDir {
		if e := filepath.Ext(name); e != "" && e != name {
			stem, ext = strings.TrimSuffix(name, e), e
		}
	}
	for n := 1; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// PasteInto copies src into dir under a name from UniqueDestination and
// returns the destination. A vanished source is invalid input.
func PasteInto(dir, src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", invalidInput("paste", src, err)
		}
		return "", wrapErr("paste", src, err)
	}
	dst := UniqueDestination(dir, filepath.Base(src), info.IsDir())
	return dst, CopyPath(src, dst)
}

// CopyPath copies src to dst recursively. File modes are kept and symlinks are
// recreated as links. A vanished source is reported as invalid input.
func CopyPath(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return invalidInput("copy", src, err)
		}
		return wrapErr("copy", src, err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(src, dst)
	case info.IsDir():
		if isWithin(src, dst) {
			return invalidInput("copy", src, errCopyIntoSelf)
		}
		return copyDir(src, dst, info.Mode())
	case info.Mode().IsRegular():
		return copyFile(src, dst, info.Mode())
	default:
		return invalidInput("copy", src, errUnsupportedSource)
	}
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}
	return wrapErr("copy", dst, os.Symlink(target, dst))
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return wrapErr("copy", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return wrapErr("copy", dst, err)
	}
	return wrapErr("copy", dst, out.Close())
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()|0o700); err != nil {
		return wrapErr("copy", dst, err)
	}
	children, err := os.ReadDir(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}
	for _, child := range children {
		if err := CopyPath(filepath.Join(src, child.Name()), filepath.Join(dst, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

// RemovePath deletes path permanently, recursing into directories.
func RemovePath(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return wrapErr("delete", path, err)
	}
	return wrapErr("delete", path, os.RemoveAll(path))
}
