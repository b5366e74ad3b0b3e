package messages

// Provisioning messages for the assembly workflow and its error conditions.
const (
	// VersionInvalidFmt formats malformed version string errors.
	VersionInvalidFmt     = "version %q must be in the form X.Y.Z: %w"
	VersionInvalidFormat  = "invalid version format"
	VersionProbeFailedFmt = "probe host python version: %w"
	VersionProbeOutputFmt = "host python reported %q: %w"

	// HostLibsPathUnsetFmt formats the missing search-path variable error.
	HostLibsPathUnsetFmt = "%s environment variable is not set"
	HostLibsNotFoundFmt  = "could not find any %s/libs directory in %s"

	// FetchCreateRequestFmt formats request construction errors.
	FetchCreateRequestFmt    = "create request for %s: %w"
	FetchDownloadFmt         = "download %s: %w"
	FetchUnexpectedStatusFmt = "download %s: unexpected status %s"
	FetchCreateTempFileFmt   = "create temp file for %s: %w"
	FetchWriteFmt            = "write %s: %w"
	FetchCloseFmt            = "close %s: %w"
	FetchRenameFmt           = "move %s into place: %w"

	// ExtractOpenFmt formats archive open errors.
	ExtractOpenFmt       = "open archive %s: %w"
	ExtractUnsafePathFmt = "archive entry %q escapes the target directory"
	ExtractCreateDirFmt  = "create dir %s: %w"
	ExtractOpenEntryFmt  = "open archive entry %s: %w"
	ExtractCreateFileFmt = "create file %s: %w"
	ExtractWriteFileFmt  = "write file %s: %w"
	ExtractCloseFileFmt  = "close file %s: %w"

	// MergeReadSourceFmt formats source directory read errors.
	MergeReadSourceFmt = "read host libs dir %s: %w"
	MergeStatFmt       = "check %s: %w"
	MergeCopyFileFmt   = "copy %s: %w"
	MergeCopyDirFmt    = "copy dir %s: %w"

	// PatchReadFmt formats path configuration read errors.
	PatchReadFmt             = "read path configuration %s: %w"
	PatchDirectiveMissingFmt = "expected %q directive not found in %s"
	PatchWriteFmt            = "write path configuration %s: %w"

	// PipToolExitFmt formats child process failures.
	PipToolExitFmt     = "%s exited with error: %v"
	PipToolStdoutFmt   = "%s stdout: %s\n"
	PipToolStderrFmt   = "%s stderr: %s\n"
	PipBootstrapLabel  = "get-pip"
	PipInstallLabel    = "pip install"
	PipReadEnvFileFmt  = "read env file %s: %w"
	PipParseEnvFileFmt = "parse env file %s: %w"

	// ProvisionCreateTargetFmt formats target directory creation errors.
	ProvisionCreateTargetFmt = "create target dir %s: %w"

	ProvisionDownloadingFmt         = "Downloading embeddable archive for Python %s...\n"
	ProvisionCopyingLibs            = "Copying host libs..."
	ProvisionEnablingSite           = "Enabling import site..."
	ProvisionBootstrappingPip       = "Installing pip..."
	ProvisionInstallRequirementsFmt = "Installing requirements from %s...\n"
	ProvisionReusingFmt             = "Found existing pip executable in %s; skipping assembly\n"
	ProvisionDone                   = "Done!"

	ProvisionVersionDriftFmt      = "Warning: target directory was assembled for Python %s but %s was requested; reusing as-is\n"
	ProvisionRecordVersionWarnFmt = "Warning: failed to record provisioned version: %v\n"
	ProvisionCleanupBootstrapFmt  = "Warning: failed to remove bootstrap script %s: %v\n"
	ProvisionReadRecordWarnFmt    = "Warning: failed to read provisioned version record: %v\n"

	// EnvfileLineErrorFmt formats env file line errors.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "invalid trailing characters after quoted value"

	// ConfigReadFmt formats manifest read errors.
	ConfigReadFmt        = "read config %s: %w"
	ConfigParseFmt       = "parse config %s: %w"
	ConfigUnknownKeysFmt = "config %s contains unknown keys:\n%s"

	// FsutilCreateTempFileFmt formats temp file creation errors.
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilSetPermissionsFmt = "set permissions for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilRenameTempFileFmt = "rename temp file for %s: %w"
)
