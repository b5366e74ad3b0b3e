package fetch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyembed/pyembed/internal/messages"
)

// ExtractZip unpacks the archive at archivePath into destDir, preserving the
// archive's internal relative paths. Entries that would escape destDir are
// rejected. Extraction is not transactional; a failed extraction may leave a
// partially populated destDir.
func ExtractZip(archivePath string, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf(messages.ExtractOpenFmt, archivePath, err)
	}
	defer func() { _ = reader.Close() }()

	cleanDest := filepath.Clean(destDir)
	for _, file := range reader.File {
		target := filepath.Join(cleanDest, filepath.FromSlash(file.Name))
		if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return fmt.Errorf(messages.ExtractUnsafePathFmt, file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.ExtractCreateDirFmt, target, err)
			}
			continue
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf(messages.ExtractCreateDirFmt, filepath.Dir(target), err)
	}
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf(messages.ExtractOpenEntryFmt, file.Name, err)
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf(messages.ExtractCreateFileFmt, target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.ExtractWriteFileFmt, target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.ExtractCloseFileFmt, target, err)
	}
	return nil
}
