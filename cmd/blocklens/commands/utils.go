/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the BlockLens commands. Provides common
configuration loading, logging setup, and input helpers used across all
command implementations.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/kleascm/blocklens/pkg/logging"
	"github.com/spf13/viper"
)

// appLogger is the shared logging system for all commands, built by
// SetupLogging and released by CloseLogging.
var appLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("BLOCKLENS")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logging system from the persistent flags and config
func SetupLogging() error {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return err
	}
	appLogger = logger
	return nil
}

// CloseLogging closes the logging system and rotates out old files.
func CloseLogging() {
	if appLogger != nil {
		appLogger.Close()
		appLogger = nil
	}
}

// loadTree parses the markup file named by the input_file setting.
func loadTree() (*dom.Tree, error) {
	path := viper.GetString("input_file")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markup file: %w", err)
	}
	defer f.Close()

	tree, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return tree, nil
}

// geometrySnapshot is the on-disk geometry format accepted by --geometry.
type geometrySnapshot struct {
	Boxes      []interfaces.Rect `json:"boxes"`
	PageHeight float64           `json:"page_height"`
}

// attachGeometry loads an optional geometry snapshot onto the tree.
func attachGeometry(tree *dom.Tree) error {
	path := viper.GetString("geometry_file")
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read geometry file: %w", err)
	}
	var snapshot geometrySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to decode geometry file: %w", err)
	}

	tree.AttachGeometry(snapshot.Boxes, snapshot.PageHeight)
	return nil
}

// printJSON writes a result to stdout as indented JSON.
func printJSON(v interface{}) error {
	return writeJSON(os.Stdout, v)
}

// writeJSON writes a result to w as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
