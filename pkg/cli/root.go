package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getmockd/shortuuid/pkg/config"
	"github.com/getmockd/shortuuid/pkg/logging"
	"github.com/getmockd/shortuuid/pkg/shortuuid"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	alphabetFlag string
	configFlag   string
	jsonOutput   bool
	verbose      bool

	// Effective configuration, loaded in PersistentPreRunE
	cfg    *config.Config
	logger *slog.Logger

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shortuuid",
	Short: "shortuuid encodes UUIDs as short, URL-friendly strings",
	Long: `shortuuid converts 128-bit UUIDs to compact strings over a chosen
alphabet and back. The default alphabet is base58 (digits 1-9, uppercase
without I/O, lowercase without l), which encodes any UUID in 22 characters.

Alphabets can be given as a built-in profile name (base58, base62, base36,
hex), a profile from the config file, or a literal character set.
By default, shortuuid looks for .shortuuidrc.yaml in the working directory,
then <user config dir>/shortuuid/config.yaml.`,
	// No Run function here means 'shortuuid' with no args prints help.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.ConfigPathFromEnv()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		if cfg.Output == "json" && !cmd.Flags().Changed("json") {
			jsonOutput = true
		}
		if cfg.Verbose {
			verbose = true
		}

		if verbose {
			logger = logging.New(logging.Config{Level: logging.LevelDebug, Format: logging.FormatText})
		} else {
			logger = logging.Nop()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&alphabetFlag, "alphabet", "a", "", "Alphabet profile name or literal character set (default: base58)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
}

// activeAlphabet resolves the alphabet selected by flag, environment, or
// config file.
func activeAlphabet() (shortuuid.Alphabet, error) {
	a, err := cfg.ResolveAlphabet(alphabetFlag)
	if err != nil {
		return shortuuid.Alphabet{}, err
	}
	logger.Debug("resolved alphabet", "size", a.Len(), "length", a.EncodedLength())
	return a, nil
}
