package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ft-interactive/shard/deploy"
	"github.com/ft-interactive/shard/git"
	"github.com/ft-interactive/shard/s3"
)

type options struct {
	confirm  bool
	dryRun   bool
	path     string
	logLevel string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "shard",
		Short: "Deploy changed top-level directories to S3",
		Long: `shard inspects the head commit of the current branch, works out which
top-level project directories it touched, and uploads each one to the
environment's S3 bucket under a branch-scoped key prefix.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.confirm, "confirm", false, "skip the confirmation prompt and deploy immediately")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the deployment plan without uploading")
	cmd.Flags().StringVar(&opts.path, "path", ".", "path to the repository to deploy from")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(versionCmd())

	return cmd
}

func run(ctx context.Context, opts *options) error {
	logger := log.Default()
	if lvl, err := log.ParseLevel(opts.logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	repo, err := git.Open(&git.Options{Path: opts.path, Logger: logger})
	if err != nil {
		return err
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		return err
	}

	remote, err := repo.Origin()
	if err != nil {
		return err
	}

	root, err := repo.Root()
	if err != nil {
		return err
	}

	// Environment validation happens before any prompt or network call.
	target, err := deploy.ResolveTarget(root, branch, remote.Slug())
	if err != nil {
		return err
	}

	dirs := repo.ChangedDirs(branch)
	if len(dirs) == 0 {
		logger.Info("head commit touched no directories, nothing to deploy",
			"branch", branch)
		return nil
	}

	plan := deploy.NewPlan(root, dirs, target)
	fmt.Println(renderSummary(plan, branch, remote))

	if opts.dryRun {
		logger.Info("dry run, nothing uploaded")
		return nil
	}

	if !opts.confirm {
		ok, err := confirmDeploy(target)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("deployment aborted")
			return nil
		}
	}

	client, err := s3.New(
		s3.WithRegion(target.Region),
		s3.WithCredentials(target.Credentials.AccessKey, target.Credentials.SecretKey),
		s3.WithProgress(func(key string, size int64) {
			logger.Debug("uploaded", "key", key, "bytes", size)
		}),
	)
	if err != nil {
		return err
	}

	result, err := deploy.Deploy(ctx, plan, client, logger)
	if err != nil {
		return err
	}

	logger.Info("deploy complete",
		"dirs", result.DirsUploaded,
		"files", result.FilesUploaded,
		"bytes", result.BytesUploaded)
	fmt.Printf("\nDeployed to %s\n", target.SiteURL())
	return nil
}

// confirmDeploy asks for an interactive yes/no answer, defaulting to No.
// Aborting the prompt counts as declining, not as an error.
func confirmDeploy(target *deploy.Target) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Deploy to the %s bucket %q?", target.Environment(), target.Bucket)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return confirmed, nil
}
