package messages

// CLI messages for the root command and its flags.
const (
	// RootUse is the CLI command usage line.
	RootUse = "pyembed [target-dir]"
	// RootShort is the short description for the root command.
	RootShort = "Assemble a self-contained embedded Python distribution"
	RootLong  = "pyembed downloads the official embeddable Python archive for a version,\n" +
		"merges the host installation's libs files into it, re-enables standard\n" +
		"import resolution, bootstraps pip, and optionally installs a requirements\n" +
		"manifest. The result is a redistributable interpreter directory."

	FlagPyVersion    = "Python version to provision (X.Y.Z); detected from the host python when omitted"
	FlagRequirements = "Path to a requirements manifest to install after pip is bootstrapped"
	FlagEnvFile      = "Path to a KEY=VALUE file of extra environment variables for pip invocations"
	FlagConfig       = "Path to a pyembed.toml manifest; flags take precedence over its values"

	// DefaultTargetDir is used when no target directory argument is given.
	DefaultTargetDir = "pydist"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	ExpandPathErrFmt = "expand path %s: %w"
)
