package pyversion

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pyembed/pyembed/internal/testutil"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"3.9.7", "3.10.0", "0.0.0", "10.11.12"}
	for _, raw := range cases {
		v, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", raw, err)
		}
		if v.String() != raw {
			t.Fatalf("round trip %q: got %q", raw, v.String())
		}
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	v, err := Parse(" 3.9.7\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v != (Version{Major: 3, Minor: 9, Patch: 7}) {
		t.Fatalf("unexpected version %+v", v)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "3", "3.9", "3.9.7.1", "a.b.c", "3.9.x", "3.-1.0", "3.+9.7", "3..7"}
	for _, raw := range cases {
		_, err := Parse(raw)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", raw)
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%q) error %v is not ErrInvalidFormat", raw, err)
		}
	}
}

func TestXYIsNotZeroPadded(t *testing.T) {
	if got := (Version{Major: 3, Minor: 9, Patch: 7}).XY(); got != "39" {
		t.Fatalf("XY for 3.9.7: got %q", got)
	}
	if got := (Version{Major: 3, Minor: 10, Patch: 2}).XY(); got != "310" {
		t.Fatalf("XY for 3.10.2: got %q", got)
	}
}

func overrideProbe(t *testing.T, stubPath string) {
	t.Helper()
	orig := execCommandContext
	execCommandContext = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, stubPath)
	}
	t.Cleanup(func() { execCommandContext = orig })
}

func TestDetectParsesInterpreterOutput(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVersionStub(t, dir, "python", "3.9.7")
	overrideProbe(t, filepath.Join(dir, "python"))

	v, err := Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if v.String() != "3.9.7" {
		t.Fatalf("unexpected version %s", v)
	}
}

func TestDetectFailsOnNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "python", 1)
	overrideProbe(t, filepath.Join(dir, "python"))

	if _, err := Detect(context.Background()); err == nil {
		t.Fatal("expected error for failing interpreter")
	}
}

func TestDetectFailsOnUnparsableOutput(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteVersionStub(t, dir, "python", "not-a-version")
	overrideProbe(t, filepath.Join(dir, "python"))

	_, err := Detect(context.Background())
	if err == nil {
		t.Fatal("expected error for unparsable output")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("error %v is not ErrInvalidFormat", err)
	}
}
