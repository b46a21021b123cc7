package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/voidrun/slipstream/config"
	"github.com/voidrun/slipstream/log"
	"github.com/voidrun/slipstream/render"
	"github.com/voidrun/slipstream/sim"
)

const envPrefix = "SLIPSTREAM"

// Version is overridden at build time via -ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "slipstream",
	Short: "Endless procedural racing in the terminal",
	Long: `Slipstream streams an endless procedural track and races you down it.
Steer with WASD or the arrow keys, pitch with Q/E, boost with space.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.slipstream.yml)")

	rootCmd.PersistentFlags().Uint64Var(&config.Seed, "seed", 0,
		"track generator seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&config.TotalLaps, "laps",
		config.TotalLaps, "number of laps in a race")
	rootCmd.PersistentFlags().Int64Var(&config.CheckpointInterval, "checkpoint-interval",
		config.CheckpointInterval, "mark every Nth segment as a checkpoint")
	rootCmd.PersistentFlags().Int64Var(&config.CheckpointsPerLap, "checkpoints-per-lap",
		config.CheckpointsPerLap, "checkpoints that close one lap")
	rootCmd.PersistentFlags().Float64Var(&config.HazardDensity, "hazard-density",
		config.HazardDensity, "probability a segment carries hazards")
	rootCmd.PersistentFlags().Float64Var(&config.PowerUpDensity, "powerup-density",
		config.PowerUpDensity, "probability a segment carries power-ups")
	rootCmd.PersistentFlags().IntVar(&config.FrameRate, "frame-rate",
		config.FrameRate, "tick frequency in Hz")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		config.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&config.LogFile, "log-file",
		config.LogFile, "log output file")
}

func run() error {
	if err := log.Init(config.LogLevel, config.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	log.Logger.Info("starting",
		zap.Uint64("seed", config.Seed),
		zap.Int("laps", config.TotalLaps),
		zap.Int("frame_rate", config.FrameRate))

	simulation := sim.New(config.SimConfig(), log.Logger)

	viewer, err := render.NewViewer(simulation, config.FrameRate, log.Logger)
	if err != nil {
		return fmt.Errorf("init viewer: %w", err)
	}
	viewer.Run()
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slipstream")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes, so --hazard-density binds
		// to SLIPSTREAM_HAZARD_DENSITY.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set
		// and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
