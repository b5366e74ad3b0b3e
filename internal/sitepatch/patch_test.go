package sitepatch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pyembed/pyembed/internal/pyversion"
)

var v39 = pyversion.Version{Major: 3, Minor: 9, Patch: 7}

func writePth(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName(v39))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pth: %v", err)
	}
	return path
}

func TestFileName(t *testing.T) {
	if got := FileName(v39); got != "python39._pth" {
		t.Fatalf("unexpected file name %q", got)
	}
	v310 := pyversion.Version{Major: 3, Minor: 10, Patch: 0}
	if got := FileName(v310); got != "python310._pth" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestApplyUncommentsDirective(t *testing.T) {
	dir := t.TempDir()
	path := writePth(t, dir, "python39.zip\n.\n\n# Uncomment to run site.main() automatically\n#import site\n")

	if err := Apply(dir, v39); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "python39.zip\n.\n\n# Uncomment to run site.main() automatically\nimport site\n"
	if string(data) != want {
		t.Fatalf("other lines must be unchanged byte-for-byte:\ngot  %q\nwant %q", data, want)
	}
}

func TestApplyAlreadyActiveIsSuccess(t *testing.T) {
	dir := t.TempDir()
	content := "python39.zip\n.\nimport site\n"
	path := writePth(t, dir, content)

	if err := Apply(dir, v39); err != nil {
		t.Fatalf("Apply on already-active directive: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != content {
		t.Fatalf("already-active file must not be rewritten, got %q", data)
	}
}

func TestApplyMissingDirective(t *testing.T) {
	dir := t.TempDir()
	writePth(t, dir, "python39.zip\n.\n")

	err := Apply(dir, v39)
	if !errors.Is(err, ErrDirectiveMissing) {
		t.Fatalf("expected ErrDirectiveMissing, got %v", err)
	}
}

func TestApplyMissingFile(t *testing.T) {
	if err := Apply(t.TempDir(), v39); err == nil {
		t.Fatal("expected error for missing path configuration file")
	}
}
