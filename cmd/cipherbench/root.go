package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Bare invocation runs the full benchmark matrix.
var rootCmd = &cobra.Command{
	Use:   "cipherbench",
	Short: "Benchmark symmetric block ciphers in CBC mode",
	Long: `cipherbench measures encrypt and decrypt throughput for AES-128,
AES-256 and DES in CBC mode with PKCS#7 padding across a matrix of payload
sizes, then writes a CSV table, a text summary and two bar charts to the
results directory and prints a summary table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSuite,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cipherbench.yaml)")
	rootCmd.PersistentFlags().Int("runs", 10, "timed repetitions per (size, algorithm) combination")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding fixture files")
	rootCmd.PersistentFlags().String("results-dir", "results", "directory receiving result artifacts")
	rootCmd.PersistentFlags().StringSlice("sizes", []string{"1KB", "1MB", "10MB"}, "payload sizes to benchmark")

	viper.BindPFlag("runs", rootCmd.PersistentFlags().Lookup("runs"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
	viper.BindPFlag("sizes", rootCmd.PersistentFlags().Lookup("sizes"))
}
