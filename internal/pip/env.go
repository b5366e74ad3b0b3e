package pip

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// scriptsSubdir is where get-pip places the package-manager executables.
const scriptsSubdir = "Scripts"

var environ = os.Environ

// Windows treats environment keys case-insensitively, so an inherited
// "Path=" entry must be replaced by the override, not joined by it.
var foldEnvKeys = runtime.GOOS == "windows"

// ChildEnv builds the process-environment override for child invocations:
// the parent environment with PATH replaced by the target directory and its
// Scripts subdirectory, plus any extra variables. The parent process's own
// environment is never mutated, so concurrent provisioners in one process
// stay isolated.
func ChildEnv(targetDir string, extra map[string]string) []string {
	pathValue := targetDir + string(os.PathListSeparator) + ScriptsDir(targetDir)
	env := setEnv(environ(), "PATH", pathValue)

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = setEnv(env, key, extra[key])
	}
	return env
}

// ScriptsDir returns the Scripts subdirectory of the target directory.
func ScriptsDir(targetDir string) string {
	return filepath.Join(targetDir, scriptsSubdir)
}

// PythonPath returns the assembled interpreter binary path.
func PythonPath(targetDir string) string {
	return filepath.Join(targetDir, executableName("python"))
}

// PipPath returns the bootstrapped pip executable path. Its existence is the
// marker that assembly has already completed.
func PipPath(targetDir string) string {
	return filepath.Join(ScriptsDir(targetDir), executableName("pip"))
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

// setEnv returns env with key set to value, replacing an existing entry.
func setEnv(env []string, key string, value string) []string {
	out := make([]string, 0, len(env)+1)
	replaced := false
	for _, entry := range env {
		if matchesKey(entry, key) {
			if !replaced {
				out = append(out, key+"="+value)
				replaced = true
			}
			continue
		}
		out = append(out, entry)
	}
	if !replaced {
		out = append(out, key+"="+value)
	}
	return out
}

func matchesKey(entry string, key string) bool {
	idx := strings.IndexByte(entry, '=')
	if idx < 0 {
		return false
	}
	name := entry[:idx]
	if foldEnvKeys {
		return strings.EqualFold(name, key)
	}
	return name == key
}
