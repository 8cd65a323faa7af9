package state

import (
	"errors"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	"github.com/kk-code-lab/stranger/internal/i18n"
	"github.com/sirupsen/logrus"
)

// ===== CLIPBOARD =====

// copyToClipboard stages the targets (marks, else the cursor entry) as
// absolute paths. A copy made in Visual mode returns to Normal.
func (r *StateReducer) copyToClipboard(state *AppState, action ClipboardAction) error {
	targets := state.targets()
	if len(targets) == 0 {
		state.notify(LevelWarn, i18n.T(i18n.ItemsNotFound))
		return nil
	}

	items := make([]string, 0, len(targets))
	for _, t := range targets {
		items = append(items, t.PathIn(state.CurrentDir))
	}
	state.Clipboard = &Clipboard{Items: items, Action: action}

	if state.Mode.Kind == ModeVisual {
		if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
			return err
		}
	}
	state.Marked = nil

	if action == ClipboardCut {
		state.notify(LevelInfo, i18n.T(i18n.Cut, len(items)))
	} else {
		state.notify(LevelInfo, i18n.T(i18n.Copied, len(items)))
	}
	return nil
}

// paste copies every clipboard item into the current directory under a
// non-colliding name. For a cut, the sources that copied cleanly are removed
// afterwards. The clipboard is consumed either way.
func (r *StateReducer) paste(state *AppState) error {
	if state.Clipboard == nil || len(state.Clipboard.Items) == 0 {
		state.notify(LevelWarn, i18n.T(i18n.BufferEmpty))
		return nil
	}
	clip := state.Clipboard
	dir := state.CurrentDir

	result := fsutil.RunBatch(clip.Items, func(src string) error {
		_, err := fsutil.PasteInto(dir, src)
		return err
	})
	if clip.Action == ClipboardCut {
		result = result.Merge(fsutil.RunBatch(result.Succeeded, fsutil.RemovePath))
	}
	r.logFailures("paste", result)

	state.Clipboard = nil
	state.Marked = nil
	if err := r.rebuild(state); err != nil {
		return err
	}

	if clip.Action == ClipboardCut {
		notifyBatch(state, result, i18n.Moved, i18n.MovedWithErr)
	} else {
		notifyBatch(state, result, i18n.Pasted, i18n.PastedWithErr)
	}
	return nil
}

// ===== DELETE =====

func (r *StateReducer) delete(state *AppState, mode DeleteMode) error {
	targets := state.targets()
	if len(targets) == 0 {
		state.notify(LevelWarn, i18n.T(i18n.ItemsNotFound))
		return nil
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		paths = append(paths, t.PathIn(state.CurrentDir))
	}

	remove := fsutil.RemovePath
	if mode == DeleteTrash {
		remove = r.trash
	}
	result := fsutil.RunBatch(paths, remove)
	r.logFailures("delete", result)

	if state.Mode.Kind == ModeVisual {
		if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
			return err
		}
	}
	state.Marked = nil
	if state.Cursor > 0 {
		state.Cursor--
	}
	if err := r.rebuild(state); err != nil {
		return err
	}

	notifyBatch(state, result, i18n.Deleted, i18n.DeletedWithErr)
	return nil
}

// trash moves path to the desktop trash. Without a trash tool on the system
// the entry is removed permanently instead.
func (r *StateReducer) trash(path string) error {
	err := r.trasher.Trash(path)
	if err == nil || !errors.Is(err, fsutil.ErrTrashUnavailable) {
		return err
	}
	r.log.WithField("path", path).Warn("trash unavailable, deleting permanently")
	return fsutil.RemovePath(path)
}

// notifyBatch reports a batch as success, partial warning or error.
func notifyBatch(state *AppState, result fsutil.BatchResult[string], okKey, errKey string) {
	switch result.Outcome() {
	case fsutil.OutcomeAllSucceeded, fsutil.OutcomeEmpty:
		state.notify(LevelSuccess, i18n.T(okKey, len(result.Succeeded)))
	case fsutil.OutcomePartial:
		state.notify(LevelWarn, i18n.T(errKey, len(result.Succeeded), len(result.Failed), result.Reasons()))
	default:
		state.notify(LevelError, i18n.T(errKey, len(result.Succeeded), len(result.Failed), result.Reasons()))
	}
}

func (r *StateReducer) logFailures(op string, result fsutil.BatchResult[string]) {
	for _, f := range result.Failed {
		r.log.WithFields(logrus.Fields{
			"op":   op,
			"path": f.Item,
			"kind": fsutil.KindOf(f.Err).String(),
		}).WithError(f.Err).Warn("file operation failed")
	}
}

// ===== INSERT COMMITS =====

// rename commits the under-line edit as the new name of the cursor entry. On
// failure the editor stays open with the error shown.
func (r *StateReducer) rename(state *AppState, name string) error {
	oldPath := state.CurrentFilePath()
	if oldPath == "" {
		state.notify(LevelError, fsutil.ErrNoSelection.Error())
		return nil
	}
	newPath, err := fsutil.RenamePath(oldPath, name)
	if err != nil {
		r.log.WithError(err).WithField("path", oldPath).Warn("rename failed")
		notifyEditError(state, err)
		return nil
	}

	if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
		return err
	}
	if err := r.rebuild(state); err != nil {
		return err
	}
	if err := r.selectName(state, filepath.Base(newPath)); err != nil {
		return err
	}
	state.notify(LevelSuccess, i18n.T(i18n.Renamed, filepath.Base(newPath)))
	return nil
}

// create commits the under-line edit as a new file, or a directory when the
// name ends with a separator.
func (r *StateReducer) create(state *AppState, name string) error {
	target, err := fsutil.CreatePath(state.CurrentDir, name)
	if err != nil {
		r.log.WithError(err).WithField("name", name).Warn("create failed")
		notifyEditError(state, err)
		return nil
	}

	if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
		return err
	}
	if err := r.rebuild(state); err != nil {
		return err
	}
	if err := r.selectName(state, firstComponent(name)); err != nil {
		return err
	}
	state.notify(LevelSuccess, i18n.T(i18n.Created, target))
	return nil
}

func notifyEditError(state *AppState, err error) {
	if errors.Is(err, fsutil.ErrEmptyName) {
		state.notify(LevelError, i18n.T(i18n.NameEmpty))
		return
	}
	state.notify(LevelError, err.Error())
}

// firstComponent is the entry a nested create shows up as in the listing.
func firstComponent(name string) string {
	name = strings.TrimLeft(filepath.ToSlash(name), "/")
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i]
	}
	return name
}
