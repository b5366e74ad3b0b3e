// Package provision orchestrates the assembly of an embedded Python
// distribution: resolve the version, fetch and extract the embeddable
// archive, merge host libs, enable import site, bootstrap pip, and install
// declared dependencies. Every step is fatal on failure; there is no retry
// or rollback, and a failed run may leave the target directory partially
// populated for manual recovery.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/pyembed/pyembed/internal/envfile"
	"github.com/pyembed/pyembed/internal/fetch"
	"github.com/pyembed/pyembed/internal/fsutil"
	"github.com/pyembed/pyembed/internal/hostlib"
	"github.com/pyembed/pyembed/internal/merge"
	"github.com/pyembed/pyembed/internal/messages"
	"github.com/pyembed/pyembed/internal/pip"
	"github.com/pyembed/pyembed/internal/pyversion"
	"github.com/pyembed/pyembed/internal/sitepatch"
)

const (
	defaultEmbedBaseURL = "https://www.python.org/ftp/python"
	defaultGetPipURL    = "https://bootstrap.pypa.io/get-pip.py"

	bootstrapScriptName = "get-pip.py"
	versionRecordName   = ".pyembed-version"
)

var (
	embedBaseURL  = defaultEmbedBaseURL
	getPipURL     = defaultGetPipURL
	detectVersion = pyversion.Detect
	lookupEnv     = os.LookupEnv
	warnColor     = color.New(color.FgYellow)
)

// Options configures a provisioning run.
type Options struct {
	// Version is an explicit X.Y.Z version; the host interpreter is probed
	// when empty.
	Version string
	// Requirements is an optional dependency manifest path, passed through
	// to pip unparsed.
	Requirements string
	// EnvFile is an optional KEY=VALUE file of extra variables for child
	// invocations.
	EnvFile string
	// Out receives progress lines and echoed subprocess output; defaults to
	// os.Stderr.
	Out io.Writer
}

// Run provisions targetDir. Assembly is skipped when the pip marker
// executable already exists; the requirements install still runs in that
// case when a manifest was supplied.
func Run(ctx context.Context, targetDir string, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	version, err := resolveVersion(ctx, opts.Version)
	if err != nil {
		return err
	}

	extra, err := loadExtraEnv(opts.EnvFile)
	if err != nil {
		return err
	}
	env := pip.ChildEnv(targetDir, extra)

	if markerExists(targetDir) {
		_, _ = fmt.Fprintf(out, messages.ProvisionReusingFmt, targetDir)
		warnVersionDrift(out, targetDir, version)
		if err := installRequirements(ctx, targetDir, opts.Requirements, env, out); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, messages.ProvisionDone)
		return nil
	}

	// Host libs must resolve before any network traffic; a machine without a
	// matching installation fails fast and offline.
	libsDir, err := hostlib.Locate(version, lookupEnv)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf(messages.ProvisionCreateTargetFmt, targetDir, err)
	}

	if err := fetchDistribution(ctx, version, targetDir, out); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, messages.ProvisionCopyingLibs)
	if err := merge.Merge(libsDir, targetDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, messages.ProvisionEnablingSite)
	if err := sitepatch.Apply(targetDir, version); err != nil {
		return err
	}

	if err := bootstrapPip(ctx, targetDir, env, out); err != nil {
		return err
	}
	recordVersion(out, targetDir, version)

	if err := installRequirements(ctx, targetDir, opts.Requirements, env, out); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, messages.ProvisionDone)
	return nil
}

func resolveVersion(ctx context.Context, explicit string) (pyversion.Version, error) {
	if explicit != "" {
		return pyversion.Parse(explicit)
	}
	return detectVersion(ctx)
}

func loadExtraEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.PipReadEnvFileFmt, path, err)
	}
	extra, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.PipParseEnvFileFmt, path, err)
	}
	return extra, nil
}

func markerExists(targetDir string) bool {
	info, err := os.Stat(pip.PipPath(targetDir))
	return err == nil && !info.IsDir()
}

func embedArchiveURL(version pyversion.Version) string {
	v := version.String()
	return fmt.Sprintf("%s/%s/python-%s-embed-amd64.zip", embedBaseURL, v, v)
}

func fetchDistribution(ctx context.Context, version pyversion.Version, targetDir string, out io.Writer) error {
	_, _ = fmt.Fprintf(out, messages.ProvisionDownloadingFmt, version)
	archive, err := fetch.DownloadTemp(ctx, embedArchiveURL(version), "pyembed-embed-*.zip")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(archive) }()
	return fetch.ExtractZip(archive, targetDir)
}

func bootstrapPip(ctx context.Context, targetDir string, env []string, out io.Writer) error {
	_, _ = fmt.Fprintln(out, messages.ProvisionBootstrappingPip)
	script := filepath.Join(targetDir, bootstrapScriptName)
	if err := fetch.DownloadFile(ctx, getPipURL, script); err != nil {
		return err
	}
	if err := pip.Bootstrap(ctx, targetDir, script, env, out); err != nil {
		return err
	}
	if err := os.Remove(script); err != nil {
		_, _ = warnColor.Fprintf(out, messages.ProvisionCleanupBootstrapFmt, script, err)
	}
	return nil
}

func installRequirements(ctx context.Context, targetDir string, manifest string, env []string, out io.Writer) error {
	if manifest == "" {
		return nil
	}
	_, _ = fmt.Fprintf(out, messages.ProvisionInstallRequirementsFmt, manifest)
	return pip.InstallRequirements(ctx, targetDir, manifest, env, out)
}

// recordVersion writes the resolved version next to the marker so later runs
// can detect drift between what was assembled and what is being requested.
func recordVersion(out io.Writer, targetDir string, version pyversion.Version) {
	path := filepath.Join(targetDir, versionRecordName)
	if err := fsutil.WriteFileAtomic(path, []byte(version.String()+"\n"), 0o644); err != nil {
		_, _ = warnColor.Fprintf(out, messages.ProvisionRecordVersionWarnFmt, err)
	}
}

// warnVersionDrift flags a reused target directory whose recorded version
// differs from the requested one. The directory is still reused as-is;
// re-assembly over an existing marker would need rollback semantics this
// tool does not have.
func warnVersionDrift(out io.Writer, targetDir string, version pyversion.Version) {
	data, err := os.ReadFile(filepath.Join(targetDir, versionRecordName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			_, _ = warnColor.Fprintf(out, messages.ProvisionReadRecordWarnFmt, err)
		}
		return
	}
	recorded := strings.TrimSpace(string(data))
	if recorded != "" && recorded != version.String() {
		_, _ = warnColor.Fprintf(out, messages.ProvisionVersionDriftFmt, recorded, version)
	}
}
