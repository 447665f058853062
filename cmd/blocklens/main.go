/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for BlockLens. Thin cobra wrapper around
the layout analysis and smart matching pipelines with configuration management
and structured logging. All decision logic lives in the pkg packages.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/blocklens/cmd/blocklens/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64

	// Input configuration
	inputFile string
	selector  string
	geometry  string

	// Matching configuration
	hintsFile string
	blockType string

	// Scan configuration
	scanURL          string
	describeEndpoint string
	describeAPIKey   string
	outputDir        string
	renderTimeout    time.Duration
	emitTemplates    bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "blocklens",
		Short: "BlockLens - Layout pattern inference and smart element matching",
		Long: `BlockLens infers structural layout patterns for regions of a markup tree and
locates the tree node best matching an externally supplied content description.
Both pipelines are pure, deterministic functions over an immutable tree snapshot;
this CLI is a thin I/O shell around them.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Bind persistent flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Infer the layout pattern of a markup region",
		Long: `Parse a local markup file, locate the region to analyze, and print the inferred
layout pattern, block name, and structure summary as JSON.`,
		RunE: commands.RunAnalyze,
	}
	analyzeCmd.Flags().StringVar(&inputFile, "file", "", "Path to markup file (required)")
	analyzeCmd.Flags().StringVar(&selector, "selector", "body", "Selector of the region to analyze")
	analyzeCmd.MarkFlagRequired("file")
	viper.BindPFlag("input_file", analyzeCmd.Flags().Lookup("file"))
	viper.BindPFlag("selector", analyzeCmd.Flags().Lookup("selector"))
	rootCmd.AddCommand(analyzeCmd)

	// Add match command
	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "Locate the element best matching a content-hints descriptor",
		Long: `Parse a local markup file, optionally attach a geometry snapshot, score candidate
nodes against the supplied content hints, and print the winning selector (plus
sibling selectors for split repeating groups) as JSON.`,
		RunE: commands.RunMatch,
	}
	matchCmd.Flags().StringVar(&inputFile, "file", "", "Path to markup file (required)")
	matchCmd.Flags().StringVar(&hintsFile, "hints", "", "Path to content hints JSON (required)")
	matchCmd.Flags().StringVar(&blockType, "type", "other", "Declared block type (hero, cards, carousel, other)")
	matchCmd.Flags().StringVar(&geometry, "geometry", "", "Path to geometry snapshot JSON")
	matchCmd.MarkFlagRequired("file")
	matchCmd.MarkFlagRequired("hints")
	viper.BindPFlag("input_file", matchCmd.Flags().Lookup("file"))
	viper.BindPFlag("hints_file", matchCmd.Flags().Lookup("hints"))
	viper.BindPFlag("block_type", matchCmd.Flags().Lookup("type"))
	viper.BindPFlag("geometry_file", matchCmd.Flags().Lookup("geometry"))
	rootCmd.AddCommand(matchCmd)

	// Add scan command
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Render a page, describe its regions, and match each one",
		Long: `Render a page in headless Chrome, send the screenshot to the vision describer
endpoint, run smart matching for every described region, analyze the layout of
each matched node, and write a JSON report.`,
		RunE: commands.RunScan,
	}
	scanCmd.Flags().StringVar(&scanURL, "url", "", "Page URL to scan (required)")
	scanCmd.Flags().StringVar(&describeEndpoint, "describe-endpoint", "", "Vision describer endpoint (required)")
	scanCmd.Flags().StringVar(&describeAPIKey, "describe-api-key", "", "Vision describer API key")
	scanCmd.Flags().StringVar(&outputDir, "output", "./blocklens_output", "Directory for scan reports")
	scanCmd.Flags().DurationVar(&renderTimeout, "render-timeout", 60*time.Second, "Timeout for page rendering")
	scanCmd.Flags().BoolVar(&emitTemplates, "emit-templates", false, "Render output block templates into the report")
	scanCmd.MarkFlagRequired("url")
	scanCmd.MarkFlagRequired("describe-endpoint")
	viper.BindPFlag("scan_url", scanCmd.Flags().Lookup("url"))
	viper.BindPFlag("describe_endpoint", scanCmd.Flags().Lookup("describe-endpoint"))
	viper.BindPFlag("describe_api_key", scanCmd.Flags().Lookup("describe-api-key"))
	viper.BindPFlag("output_dir", scanCmd.Flags().Lookup("output"))
	viper.BindPFlag("render_timeout", scanCmd.Flags().Lookup("render-timeout"))
	viper.BindPFlag("emit_templates", scanCmd.Flags().Lookup("emit-templates"))
	rootCmd.AddCommand(scanCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
