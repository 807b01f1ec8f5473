package install

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bloomreach-forge/addonctl/internal/messages"
	"github.com/bloomreach-forge/addonctl/internal/pomfile"
)

// backupSuffix is appended to a file's path to name its sibling backup.
const backupSuffix = ".bak"

// applyEdits writes the edited files with all-or-nothing semantics: every
// target is backed up once, every edited text is checked for well-formedness
// before any write, and any write failure restores every backup. A batch with
// zero edits writes nothing and creates no backups.
func applyEdits(sys System, root string, edits map[string]string) error {
	if len(edits) == 0 {
		return nil
	}

	rels := make([]string, 0, len(edits))
	for rel := range edits {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	// Reject the whole batch before touching anything when any edited
	// content is no longer well-formed.
	for _, rel := range rels {
		if err := pomfile.CheckWellFormed(edits[rel]); err != nil {
			return fmt.Errorf(messages.WriterEditedContentMalformedFmt, rel, err)
		}
	}

	backups := make(map[string]string)
	cleanup := func() {
		for _, backupPath := range backups {
			_ = sys.Remove(backupPath)
		}
	}

	for _, rel := range rels {
		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := sys.Lstat(path)
		if err != nil {
			cleanup()
			return fmt.Errorf(messages.WriterStatFailedFmt, rel, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			cleanup()
			return fmt.Errorf(messages.WriterRefuseSymlinkFmt, rel)
		}
		current, err := sys.ReadFile(path)
		if err != nil {
			cleanup()
			return fmt.Errorf(messages.WriterBackupReadFailedFmt, rel, err)
		}
		backupPath := path + backupSuffix
		if err := sys.WriteFileAtomic(backupPath, current, info.Mode().Perm()); err != nil {
			cleanup()
			return fmt.Errorf(messages.WriterBackupWriteFailedFmt, rel, err)
		}
		backups[path] = backupPath
	}

	for _, rel := range rels {
		path := filepath.Join(root, filepath.FromSlash(rel))
		perm := os.FileMode(0o644)
		if info, err := sys.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
		if err := sys.WriteFileAtomic(path, []byte(edits[rel]), perm); err != nil {
			if restoreErr := restoreBackups(sys, backups); restoreErr != nil {
				return fmt.Errorf(messages.WriterWriteAndRestoreFailedFmt, rel, err, restoreErr)
			}
			return fmt.Errorf(messages.WriterWriteFailedFmt, rel, err)
		}
	}

	cleanup()
	return nil
}

// restoreBackups copies every backup over its original and removes the
// backup files. On restore failure the remaining backups are left in place
// for manual recovery.
func restoreBackups(sys System, backups map[string]string) error {
	paths := make([]string, 0, len(backups))
	for path := range backups {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		backupPath := backups[path]
		content, err := sys.ReadFile(backupPath)
		if err != nil {
			return fmt.Errorf(messages.WriterRestoreReadFailedFmt, backupPath, err)
		}
		perm := os.FileMode(0o644)
		if info, err := sys.Stat(backupPath); err == nil {
			perm = info.Mode().Perm()
		}
		if err := sys.WriteFileAtomic(path, content, perm); err != nil {
			return fmt.Errorf(messages.WriterRestoreWriteFailedFmt, path, err)
		}
		_ = sys.Remove(backupPath)
	}
	return nil
}
