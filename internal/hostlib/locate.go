// Package hostlib locates the standard-library support files of a full host
// Python installation, used to supplement the curated subset the embeddable
// archive ships.
package hostlib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyembed/pyembed/internal/messages"
	"github.com/pyembed/pyembed/internal/pyversion"
)

// EnvPath is the search-path variable scanned for host installations.
const EnvPath = "PATH"

const libsSubdir = "libs"

// NotFoundError indicates no search-path entry provides the host libs directory.
type NotFoundError struct {
	Dir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.HostLibsNotFoundFmt, e.Dir, EnvPath)
}

// DirName returns the host installation directory name for a version,
// e.g. "Python39" for 3.9.x and "Python310" for 3.10.x.
func DirName(version pyversion.Version) string {
	return "Python" + version.XY()
}

// Locate returns the libs directory of the first search-path entry whose final
// component matches the version-derived installation name and which contains an
// existing libs subdirectory. Entries matching by name but lacking libs are
// skipped. lookupEnv defaults to os.LookupEnv when nil.
func Locate(version pyversion.Version, lookupEnv func(string) (string, bool)) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	raw, ok := lookupEnv(EnvPath)
	if !ok || raw == "" {
		return "", fmt.Errorf(messages.HostLibsPathUnsetFmt, EnvPath)
	}

	target := DirName(version)
	for _, entry := range filepath.SplitList(raw) {
		if entry == "" || filepath.Base(entry) != target {
			continue
		}
		candidate := filepath.Join(entry, libsSubdir)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", &NotFoundError{Dir: target}
}
