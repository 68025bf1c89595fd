package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"income-engine/internal/engine"
	"income-engine/internal/export"
	"income-engine/internal/model"
)

var (
	paramsFile    string
	presetName    string
	scenario      string
	outputDir     string
	formats       []string
	effectiveWage bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation and write the comparison artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation()
	},
}

func init() {
	runCmd.Flags().StringVar(&paramsFile, "params", "", "YAML file with parameter overrides")
	runCmd.Flags().StringVar(&presetName, "preset", "", "named parameter preset (default \"default\")")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "free-form scenario label")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "./output", "directory for generated artifacts")
	runCmd.Flags().StringSliceVar(&formats, "format", []string{"pdf", "xlsx"}, "artifact formats to write (pdf, xlsx)")
	runCmd.Flags().BoolVar(&effectiveWage, "effective-wage", false, "include the effective hourly wage view")
	rootCmd.AddCommand(runCmd)
}

func runSimulation() error {
	req := &model.SimulationRequest{
		Scenario: scenario,
		Preset:   presetName,
		Options:  model.SimulationOptions{IncludeEffectiveHourlyWage: effectiveWage},
	}

	if paramsFile != "" {
		raw, err := loadOverrides(paramsFile)
		if err != nil {
			return err
		}
		req.Parameters = raw
	}

	resp := engine.Process(req)

	for _, m := range resp.SimulationResult.Messages {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", m.Level, m.Code, m.Message)
	}
	if resp.SimulationMetadata.SimulationOutcome != model.OutcomeSuccess {
		return errors.Errorf("simulation failed, no artifacts written")
	}

	totals := resp.SimulationResult.Totals
	fmt.Printf("Office worker total (net):      %.0f\n", totals.Office)
	fmt.Printf("Freelance engineer total (net): %.0f\n", totals.Freelance)
	fmt.Printf("Difference:                     %.0f\n", totals.Difference)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outputDir)
	}

	for _, format := range formats {
		var (
			data []byte
			name string
			err  error
		)
		switch format {
		case "pdf":
			data, err = export.BuildComparisonPDF(resp)
			name = "cumulative_income.pdf"
		case "xlsx":
			data, err = export.BuildProjectionXLSX(resp)
			name = "income_projection.xlsx"
		default:
			return errors.Errorf("unsupported format %q", format)
		}
		if err != nil {
			return errors.Wrapf(err, "rendering %s artifact", format)
		}

		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		fmt.Printf("Saved %s\n", path)
	}

	return nil
}

// loadOverrides reads a YAML parameter file and re-encodes it as the JSON
// object the engine overlays onto the preset.
func loadOverrides(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading params file %s", path)
	}

	var overrides map[string]interface{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Wrapf(err, "parsing params file %s", path)
	}

	raw, err := json.Marshal(overrides)
	if err != nil {
		return nil, errors.Wrap(err, "encoding parameter overrides")
	}
	return raw, nil
}
