/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scan.go
Description: Scan command implementation for BlockLens. Renders a page in
headless Chrome, asks the vision describer for region descriptions, runs smart
matching per region and layout analysis per matched node, and writes a JSON
report. End-to-end I/O shell around the two pure pipelines.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/blocklens/pkg/dom"
	"github.com/kleascm/blocklens/pkg/generate"
	"github.com/kleascm/blocklens/pkg/interfaces"
	"github.com/kleascm/blocklens/pkg/layout"
	"github.com/kleascm/blocklens/pkg/match"
	"github.com/kleascm/blocklens/pkg/render"
	"github.com/kleascm/blocklens/pkg/vision"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RegionReport is the per-region section of a scan report.
type RegionReport struct {
	Region   interfaces.RegionDescription `json:"region"`
	Match    interfaces.MatchResult       `json:"match"`
	Analysis *interfaces.LayoutAnalysis   `json:"analysis,omitempty"`
	Block    *generate.Block              `json:"block,omitempty"`
}

// ScanReport is the on-disk result of one scan.
type ScanReport struct {
	URL        string         `json:"url"`
	ScannedAt  time.Time      `json:"scanned_at"`
	PageHeight float64        `json:"page_height"`
	Regions    []RegionReport `json:"regions"`
}

// RunScan executes the end-to-end scan flow
func RunScan(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	url := viper.GetString("scan_url")
	timeout := viper.GetDuration("render_timeout")

	// Render the page
	controller := &render.Controller{}
	if err := controller.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer controller.Stop()

	renderCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	capture, err := controller.CapturePage(renderCtx, url)
	if err != nil {
		return err
	}
	appLogger.LogRender(url, capture.Duration, len(capture.Boxes), nil)
	for _, line := range controller.ConsoleLogs() {
		appLogger.GetLogger().WithField("console", line).Debug("Page console output")
	}
	for _, line := range controller.NetworkLogs() {
		appLogger.GetLogger().WithField("network", line).Debug("Page network activity")
	}

	// Build the tree snapshot with geometry
	tree, err := dom.ParseString(capture.HTML)
	if err != nil {
		return err
	}
	tree.AttachGeometry(capture.Boxes, capture.PageHeight)

	// Describe the regions
	describer := vision.NewHTTPDescriber(
		viper.GetString("describe_endpoint"),
		viper.GetString("describe_api_key"),
	)
	describeStart := time.Now()
	regions, err := describer.DescribeRegions(renderCtx, capture.Screenshot)
	if err != nil {
		return fmt.Errorf("failed to describe regions: %w", err)
	}
	appLogger.LogDescribe(len(regions), time.Since(describeStart), nil)

	// Match and analyze each region
	report := ScanReport{
		URL:        url,
		ScannedAt:  time.Now().UTC(),
		PageHeight: capture.PageHeight,
	}
	for _, region := range regions {
		entry := RegionReport{
			Region: region,
			Match:  match.Match(tree, region.Hints, region.Type),
		}
		appLogger.LogMatch(string(region.Type), entry.Match.Selector, len(entry.Match.SiblingSelectors), map[string]interface{}{
			"region": region.Name,
		})
		if entry.Match.Matched() {
			if node, err := tree.QueryOne(entry.Match.Selector); err == nil {
				if analysis, err := layout.Analyze(node); err == nil {
					entry.Analysis = &analysis
					appLogger.LogAnalysis(entry.Match.Selector, string(analysis.Pattern), analysis.BlockName, map[string]interface{}{
						"region": region.Name,
					})
					if viper.GetBool("emit_templates") {
						if block, err := generate.ForPattern(analysis); err == nil {
							entry.Block = &block
						}
					}
				} else {
					appLogger.GetLogger().WithField("region", region.Name).WithError(err).Warn("Layout analysis failed")
				}
			}
		}
		report.Regions = append(report.Regions, entry)
	}

	// Write the report
	outputDir := viper.GetString("output_dir")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, fmt.Sprintf("scan_%s.json", time.Now().Format("2006-01-02_15-04-05")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := writeJSON(f, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	appLogger.GetLogger().WithFields(map[string]interface{}{
		"report":  path,
		"regions": len(report.Regions),
	}).Info("Scan complete")

	return printJSON(report)
}
