// Package sitepatch re-enables standard import-path resolution in an
// embeddable distribution. The archive ships a pythonXY._pth file whose
// "import site" directive is commented out, which leaves pip unable to
// resolve installed packages.
package sitepatch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyembed/pyembed/internal/fsutil"
	"github.com/pyembed/pyembed/internal/messages"
	"github.com/pyembed/pyembed/internal/pyversion"
)

const (
	disabledDirective = "#import site"
	enabledDirective  = "import site"
)

// ErrDirectiveMissing indicates neither the commented nor the active
// directive was found in the path configuration file.
var ErrDirectiveMissing = errors.New("import site directive missing")

// FileName returns the per-version path configuration file name,
// e.g. "python39._pth".
func FileName(version pyversion.Version) string {
	return "python" + version.XY() + "._pth"
}

// Apply uncomments the first "#import site" directive in the target
// directory's path configuration file and writes the result back in place.
// A file whose directive is already active is left untouched and treated as
// success, keeping the workflow re-runnable.
func Apply(targetDir string, version pyversion.Version) error {
	path := filepath.Join(targetDir, FileName(version))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.PatchReadFmt, path, err)
	}

	content := string(data)
	if !strings.Contains(content, disabledDirective) {
		if hasActiveDirective(content) {
			return nil
		}
		return fmt.Errorf(messages.PatchDirectiveMissingFmt+": %w", disabledDirective, path, ErrDirectiveMissing)
	}

	patched := strings.Replace(content, disabledDirective, enabledDirective, 1)
	if err := fsutil.WriteFileAtomic(path, []byte(patched), 0o644); err != nil {
		return fmt.Errorf(messages.PatchWriteFmt, path, err)
	}
	return nil
}

func hasActiveDirective(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == enabledDirective {
			return true
		}
	}
	return false
}
