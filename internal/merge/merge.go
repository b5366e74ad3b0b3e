// Package merge copies host standard-library files into an assembled
// distribution without clobbering anything the embeddable archive ships.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pyembed/pyembed/internal/messages"
)

// Merge copies every immediate child of srcDir into destDir. A child whose
// name already exists at destDir is skipped silently; the archive's own copy
// always wins. Selection is depth-1 only: subdirectories without a destination
// counterpart are copied whole.
func Merge(srcDir string, destDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf(messages.MergeReadSourceFmt, srcDir, err)
	}
	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		if _, err := os.Lstat(dest); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.MergeStatFmt, dest, err)
		}
		if entry.IsDir() {
			if err := copyDir(src, dest); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(src, dest); err != nil {
			return err
		}
	}
	return nil
}

func copyDir(src string, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf(messages.MergeCopyDirFmt, src, err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf(messages.MergeCopyDirFmt, dest, err)
	}
	for _, entry := range entries {
		srcChild := filepath.Join(src, entry.Name())
		destChild := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcChild, destChild); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcChild, destChild); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src string, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf(messages.MergeCopyFileFmt, src, err)
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf(messages.MergeCopyFileFmt, src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf(messages.MergeCopyFileFmt, dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.MergeCopyFileFmt, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.MergeCopyFileFmt, dest, err)
	}
	return nil
}
