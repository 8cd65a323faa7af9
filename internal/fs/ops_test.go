package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePathFileAndDirectory(t *testing.T) {
	dir := t.TempDir()

	created, err := CreatePath(dir, "nested/deeper/file.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "deeper", "file.txt"), created)
	info, err := os.Stat(created)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	created, err = CreatePath(dir, "newdir/")
	require.NoError(t, err)
	info, err = os.Stat(created)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = CreatePath(dir, "nested/deeper/file.txt")
	assert.Error(t, err, "existing file must not be truncated")

	_, err = CreatePath(dir, "  ")
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestRenamePath(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "old.txt"))
	touch(t, filepath.Join(dir, "taken.txt"))

	newPath, err := RenamePath(filepath.Join(dir, "old.txt"), "new.txt")
	require.NoError(t, err)
	assert.FileExists(t, newPath)
	assert.NoFileExists(t, filepath.Join(dir, "old.txt"))

	_, err = RenamePath(newPath, "taken.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrExist))
	assert.FileExists(t, newPath)

	_, err = RenamePath(filepath.Join(dir, "missing"), "x")
	assert.True(t, IsNotFound(err))
}

func TestUniqueDestination(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "file.txt"), UniqueDestination(dir, "file.txt", false))

	touch(t, filepath.Join(dir, "file.txt"))
	first := UniqueDestination(dir, "file.txt", false)
	assert.Equal(t, filepath.Join(dir, "file_1.txt"), first)

	touch(t, first)
	assert.Equal(t, filepath.Join(dir, "file_2.txt"), UniqueDestination(dir, "file.txt", false))

	touch(t, filepath.Join(dir, "data_1.log"))
	assert.Equal(t, filepath.Join(dir, "data.log"), UniqueDestination(dir, "data.log", false))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "pkg.v2"), 0o755))
	assert.Equal(t, filepath.Join(dir, "pkg.v2_1"), UniqueDestination(dir, "pkg.v2", true))

	touch(t, filepath.Join(dir, ".bashrc"))
	assert.Equal(t, filepath.Join(dir, ".bashrc_1"), UniqueDestination(dir, ".bashrc", false))
}

func TestCopyPathRecursive(t *testing.T) {
	src := t.TempDir()
	touch(t, filepath.Join(src, "tree", "a.txt"))
	touch(t, filepath.Join(src, "tree", "inner", "b.txt"))
	require.NoError(t, os.Chmod(filepath.Join(src, "tree", "a.txt"), 0o600))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyPath(filepath.Join(src, "tree"), dst))

	assert.FileExists(t, filepath.Join(dst, "a.txt"))
	assert.FileExists(t, filepath.Join(dst, "inner", "b.txt"))
	info, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.FileExists(t, filepath.Join(src, "tree", "a.txt"), "source must stay")
}

func TestCopyPathRejectsCopyIntoItself(t *testing.T) {
	src := t.TempDir()
	touch(t, filepath.Join(src, "a.txt"))

	err := CopyPath(src, filepath.Join(src, "nested"))
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestCopyPathVanishedSourceIsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	err := CopyPath(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "dst.txt"))
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRemovePath(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "tree", "leaf.txt"))

	require.NoError(t, RemovePath(filepath.Join(dir, "tree")))
	assert.NoDirExists(t, filepath.Join(dir, "tree"))

	assert.True(t, IsNotFound(RemovePath(filepath.Join(dir, "tree"))))
}

func TestSystemTrasherCommands(t *testing.T) {
	var ran []string
	fake := func(available ...string) *SystemTrasher {
		return &SystemTrasher{
			goos: "linux",
			lookPath: func(cmd string) (string, error) {
				for _, a := range available {
					if a == cmd {
						return "/usr/bin/" + cmd, nil
					}
				}
				return "", errors.New("not found")
			},
			run: func(name string, args ...string) error {
				ran = append([]string{name}, args...)
				return nil
			},
		}
	}

	require.NoError(t, fake("trash-put").Trash("/tmp/x"))
	assert.Equal(t, []string{"trash-put", "/tmp/x"}, ran)

	require.NoError(t, fake("gio", "trash-put").Trash("/tmp/y"))
	assert.Equal(t, []string{"gio", "trash", "/tmp/y"}, ran)

	err := fake().Trash("/tmp/z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTrashUnavailable))
}

func TestRunBatchOutcomes(t *testing.T) {
	fail := errors.New("boom")
	res := RunBatch([]int{1, 2, 3, 4}, func(i int) error {
		if i%2 == 0 {
			return fail
		}
		return nil
	})

	assert.Equal(t, []int{1, 3}, res.Succeeded)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, OutcomePartial, res.Outcome())
	assert.Equal(t, "boom; boom", res.Reasons())

	all := RunBatch([]int{1}, func(int) error { return nil })
	assert.Equal(t, OutcomeAllSucceeded, all.Outcome())

	none := RunBatch([]int{1}, func(int) error { return fail })
	assert.Equal(t, OutcomeAllFailed, none.Outcome())

	merged := res.Merge(RunBatch(res.Succeeded, func(i int) error {
		if i == 3 {
			return fail
		}
		return nil
	}))
	assert.Equal(t, []int{1}, merged.Succeeded)
	assert.Len(t, merged.Failed, 3)
}

func TestPasteIntoPicksFreeName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	touch(t, src)

	dst, err := PasteInto(dir, src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a_1.txt"), dst)
	assert.FileExists(t, dst)
}

func TestPasteIntoVanishedSourceIsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	_, err := PasteInto(dir, filepath.Join(dir, "gone.txt"))
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.False(t, IsNotFound(err))
}
