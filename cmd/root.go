package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose    bool
	cpuProfile bool
)

// prof holds the running CPU profiler between pre- and post-run.
var prof interface{ Stop() }

var rootCmd = &cobra.Command{
	Use:          "solve-sudoku",
	Short:        "Solve sudoku puzzles of any square-of-a-square size",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if cpuProfile {
			prof = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")

	viper.SetEnvPrefix("SUDOKU")
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
