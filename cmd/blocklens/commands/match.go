/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: match.go
Description: Match command implementation for BlockLens. Parses a local markup
file, attaches an optional geometry snapshot, runs smart matching against the
supplied content hints, and prints the result as JSON.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/kleascm/blocklens/pkg/match"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunMatch executes the smart matching pipeline for one content-hints descriptor
func RunMatch(cmd *cobra.Command, args []string) error {
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
	if err := attachGeometry(tree); err != nil {
		return err
	}

	hints, err := loadHints(viper.GetString("hints_file"))
	if err != nil {
		return err
	}

	blockType, err := parseBlockType(viper.GetString("block_type"))
	if err != nil {
		return err
	}

	result := match.Match(tree, hints, blockType)
	appLogger.LogMatch(string(blockType), result.Selector, len(result.SiblingSelectors), nil)

	return printJSON(result)
}

// loadHints reads a ContentHints descriptor from disk.
func loadHints(path string) (interfaces.ContentHints, error) {
	var hints interfaces.ContentHints
	data, err := os.ReadFile(path)
	if err != nil {
		return hints, fmt.Errorf("failed to read hints file: %w", err)
	}
	if err := json.Unmarshal(data, &hints); err != nil {
		return hints, fmt.Errorf("failed to decode hints file: %w", err)
	}
	return hints, nil
}

// parseBlockType validates the declared block type.
func parseBlockType(raw string) (interfaces.BlockType, error) {
	switch interfaces.BlockType(raw) {
	case interfaces.BlockHero, interfaces.BlockCards, interfaces.BlockCarousel, interfaces.BlockOther:
		return interfaces.BlockType(raw), nil
	case "":
		return interfaces.BlockOther, nil
	default:
		return "", fmt.Errorf("unsupported block type %q (want hero, cards, carousel, or other)", raw)
	}
}
