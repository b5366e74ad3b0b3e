package main

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/pyembed/pyembed/internal/config"
	"github.com/pyembed/pyembed/internal/messages"
	"github.com/pyembed/pyembed/internal/provision"
)

var provisionRun = provision.Run
var configLoad = config.Load

func newRootCmd() *cobra.Command {
	var pyVersion string
	var requirements string
	var envFile string
	var configPath string

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			opts := provision.Options{
				Version:      pyVersion,
				Requirements: requirements,
				EnvFile:      envFile,
				Out:          cmd.ErrOrStderr(),
			}
			if configPath != "" {
				path, err := expandPath(configPath)
				if err != nil {
					return err
				}
				manifest, err := configLoad(path)
				if err != nil {
					return err
				}
				applyManifest(&opts, &target, manifest)
			}
			if target == "" {
				target = messages.DefaultTargetDir
			}
			target, err := expandPath(target)
			if err != nil {
				return err
			}
			if opts.Requirements, err = expandPath(opts.Requirements); err != nil {
				return err
			}
			if opts.EnvFile, err = expandPath(opts.EnvFile); err != nil {
				return err
			}
			return provisionRun(cmd.Context(), target, opts)
		},
	}

	cmd.Flags().StringVar(&pyVersion, "py-version", "", messages.FlagPyVersion)
	cmd.Flags().StringVarP(&requirements, "requirements", "r", "", messages.FlagRequirements)
	cmd.Flags().StringVar(&envFile, "env-file", "", messages.FlagEnvFile)
	cmd.Flags().StringVar(&configPath, "config", "", messages.FlagConfig)

	return cmd
}

// applyManifest fills options the caller left unset; flags always win.
func applyManifest(opts *provision.Options, target *string, manifest *config.Manifest) {
	if opts.Version == "" {
		opts.Version = manifest.Version
	}
	if opts.Requirements == "" {
		opts.Requirements = manifest.Requirements
	}
	if opts.EnvFile == "" {
		opts.EnvFile = manifest.EnvFile
	}
	if *target == "" {
		*target = manifest.Target
	}
}

// expandPath resolves a leading ~ in user-supplied paths. Empty paths pass
// through untouched.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ExpandPathErrFmt, path, err)
	}
	return expanded, nil
}
