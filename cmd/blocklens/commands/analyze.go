/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation for BlockLens. Parses a local markup
file, resolves the requested region, and prints the inferred layout analysis as
JSON.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAnalyze executes the layout analysis pipeline on one region
func RunAnalyze(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	tree, err := loadTree()
	if err != nil {
		return err
	}

	selector := viper.GetString("selector")
	node, err := tree.QueryOne(selector)
	if err != nil {
		if errors.Is(err, dom.ErrSelectorNotFound) {
			return fmt.Errorf("no element matches %q", selector)
		}
		return err
	}

	analysis, err := layout.Analyze(node)
	if err != nil {
		return err
	}

	appLogger.LogAnalysis(selector, string(analysis.Pattern), analysis.BlockName, map[string]interface{}{
		"rows":    analysis.Structure.RowCount,
		"columns": analysis.Structure.ColumnCount,
	})

	return printJSON(analysis)
}
