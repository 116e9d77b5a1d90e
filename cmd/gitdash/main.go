package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/studiowebux/gitdash/internal/config"
	"github.com/studiowebux/gitdash/internal/git"
	"github.com/studiowebux/gitdash/internal/logging"
	"github.com/studiowebux/gitdash/internal/tui"
	"gopkg.in/yaml.v3"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitdash",
	Short: "gitdash - terminal dashboard for git",
	Long: `gitdash is a small full-screen dashboard for the repository in the
current directory.

Pick "Push" to stage everything, commit with a message you type and push,
or "Status" to see git status output.

Keys:
  j/k, up/down   move
  enter          select / commit & push
  esc            back / stop editing
  r, c           refresh / copy (Status screen)
  q, ctrl+c      quit

Examples:
  gitdash                      # Dashboard for the current directory
  gitdash -C ~/src/project     # Dashboard for another repository
  gitdash --remote upstream    # Push to another remote
  gitdash config               # Show the effective configuration`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// Flags for root command
var (
	flagDir        string
	flagConfigFile string
	flagDebug      bool
)

// v carries defaults, config file, environment and bound flags
var v = config.New()

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagDir, "dir", "C", ".", "Repository directory")
	flags.StringVar(&flagConfigFile, "config", "", "Config file (default ./.gitdash.yaml or ~/.gitdash/config.yaml)")
	flags.String("remote", "", "Remote to push to (default origin)")
	flags.String("branch", "", "Branch to push (default current branch)")
	flags.String("log-file", "", "Log file path")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	mustBind(v, "git.remote", "remote")
	mustBind(v, "git.branch", "branch")
	mustBind(v, "log.file", "log-file")

	rootCmd.AddCommand(configCmd)
}

func mustBind(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

// loadConfig resolves the configuration for this run
func loadConfig() (*config.Config, error) {
	if flagDebug {
		v.Set("log.level", "debug")
	}

	cfg, err := config.Load(v, flagConfigFile)
	if err != nil {
		return nil, err
	}

	logFile, err := config.ExpandPath(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	cfg.Log.File = logFile

	return cfg, nil
}

// runDashboard wires config, logging and git into the TUI
func runDashboard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Format, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	repo, err := git.Discover(flagDir)
	if err != nil {
		logger.Error("repository discovery failed", "dir", flagDir, "error", err)
		return err
	}

	branch := cfg.Git.Branch
	if branch == "" && !repo.Detached {
		branch = repo.Branch
	}

	runner := git.NewExecRunner(cfg.Git.Binary, cfg.Git.Timeout, logger)
	client := git.NewClient(runner, git.Options{
		Dir:         repo.Root,
		Remote:      cfg.Git.Remote,
		Branch:      branch,
		ShortStatus: cfg.Status.Short,
	})

	logger.Info("starting gitdash",
		"version", version,
		"repo", repo.Root,
		"remote", client.Remote(),
		"branch", client.Branch(),
	)

	return tui.Run(tui.Options{
		Client: client,
		Logger: logger,
		Repo:   repo,
		Remote: client.Remote(),
		Branch: client.Branch(),
		FPS:    cfg.UI.FPS,
	})
}
