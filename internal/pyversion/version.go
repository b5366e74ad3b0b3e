package pyversion

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pyembed/pyembed/internal/messages"
)

// ErrInvalidFormat indicates a version string is not three dot-separated integers.
var ErrInvalidFormat = errors.New(messages.VersionInvalidFormat)

// probeExpr prints the host interpreter's version as a dotted triple.
const probeExpr = "import sys; print('.'.join(map(str, sys.version_info[:3])))"

var execCommandContext = exec.CommandContext

// Version is a Python version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse converts an X.Y.Z string into a Version.
// Any other shape, including two or four components, fails with ErrInvalidFormat.
func Parse(raw string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf(messages.VersionInvalidFmt, raw, ErrInvalidFormat)
	}
	var nums [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 || strings.HasPrefix(part, "+") {
			return Version{}, fmt.Errorf(messages.VersionInvalidFmt, raw, ErrInvalidFormat)
		}
		nums[i] = value
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as X.Y.Z.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// XY concatenates the major and minor digits without padding,
// so 3.9 yields "39" and 3.10 yields "310". This matches the naming
// convention of both host install directories and embeddable archives.
func (v Version) XY() string {
	return strconv.Itoa(v.Major) + strconv.Itoa(v.Minor)
}

// Detect resolves the version by asking the host python interpreter.
// It runs the interpreter found on the parent's search path and parses
// the dotted triple it prints.
func Detect(ctx context.Context) (Version, error) {
	cmd := execCommandContext(ctx, "python", "-c", probeExpr)
	out, err := cmd.Output()
	if err != nil {
		return Version{}, fmt.Errorf(messages.VersionProbeFailedFmt, err)
	}
	reported := strings.TrimSpace(string(out))
	version, err := Parse(reported)
	if err != nil {
		return Version{}, fmt.Errorf(messages.VersionProbeOutputFmt, reported, err)
	}
	return version, nil
}
