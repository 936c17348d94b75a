package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "turing [files...]",
	Short: "Turing runs Turing machines side by side in the terminal",
	Long: `Turing loads each machine file (.txt, .json, .yaml), runs all of them concurrently
and redraws the tape of machine N on terminal row N after every step.
Press Enter at any time to quit.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := buildRunOptions(cmd, args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	addRunFlags(rootCmd.Flags())
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.Int("max-steps", 0, "Halt a machine after this many steps (0 = unlimited)")
	fs.Int("workers", 0, "Machines executing at once (0 = number of CPUs)")
	fs.Bool("debug", false, "Write debug logs to stderr")
	fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	fs.String("redis-addr", "", "Store final results in Redis at this address")
	fs.Duration("redis-ttl", 0, "Expire results stored in Redis after this duration")
	fs.String("results-dir", "", "Store final results as JSON files in this directory")
	fs.String("config", config.DefaultPath, "YAML file providing flag defaults")
}

// buildRunOptions layers explicitly set flags over the config file.
func buildRunOptions(cmd *cobra.Command, args []string) (cli.RunOptions, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	var cfg config.Config
	var err error
	if flags.Changed("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return cli.RunOptions{}, err
	}

	opts := cli.RunOptions{
		Paths:       args,
		MaxSteps:    cfg.MaxSteps,
		Workers:     cfg.Workers,
		Debug:       cfg.Debug,
		MetricsAddr: cfg.MetricsAddr,
		RedisAddr:   cfg.RedisAddr,
		ResultsDir:  cfg.ResultsDir,
	}
	if cfg.RedisTTL != "" {
		if opts.RedisTTL, err = time.ParseDuration(cfg.RedisTTL); err != nil {
			return cli.RunOptions{}, fmt.Errorf("invalid redis_ttl: %w", err)
		}
	}

	if flags.Changed("max-steps") {
		opts.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("workers") {
		opts.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("debug") {
		opts.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("metrics-addr") {
		opts.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("redis-addr") {
		opts.RedisAddr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("redis-ttl") {
		opts.RedisTTL, _ = flags.GetDuration("redis-ttl")
	}
	if flags.Changed("results-dir") {
		opts.ResultsDir, _ = flags.GetString("results-dir")
	}

	if opts.MaxSteps < 0 || opts.Workers < 0 {
		return cli.RunOptions{}, fmt.Errorf("--max-steps and --workers must not be negative")
	}
	return opts, nil
}
