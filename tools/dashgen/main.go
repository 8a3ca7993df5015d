package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/target-inventory/tools/dashgen/dashboards"
	"github.com/donaldgifford/target-inventory/tools/dashgen/rules"
	"github.com/donaldgifford/target-inventory/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	dailyLimit := flag.Int("daily-limit", 0, "override the Target API daily limit used by quota panels and alerts")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *dailyLimit != 0 {
		cfg.DailyLimit = *dailyLimit
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file, relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	artifacts, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range artifacts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o644); err != nil { //nolint:gosec // generated artifacts are world readable
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds and validates every enabled artifact.
func generate(cfg Config) ([]artifact, error) {
	var out []artifact

	if cfg.RulesEnabled {
		recording := rules.RecordingRules()
		alerts := rules.AlertRules(cfg.DailyLimit)

		if res := validate.Rules(recording, KnownMetrics); !res.Ok() {
			return nil, fmt.Errorf("recording rules: %v", res.Errors)
		}
		if res := validate.Rules(alerts, KnownMetrics); !res.Ok() {
			return nil, fmt.Errorf("alert rules: %v", res.Errors)
		}

		for _, r := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"tgt-recording-rules.yaml", recording},
			{"tgt-alerts.yaml", alerts},
		} {
			data, err := yaml.Marshal(r.cr)
			if err != nil {
				return nil, fmt.Errorf("marshaling %s: %w", r.name, err)
			}
			out = append(out, artifact{
				path: filepath.Join("prometheus", r.name),
				data: append([]byte(generatedHeader), data...),
			})
		}
	}

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview(cfg.DailyLimit).Build()
		if err != nil {
			return nil, fmt.Errorf("building dashboard: %w", err)
		}
		res := validate.Dashboard(dash, KnownMetrics)
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "dashgen: warning: %s\n", w)
		}
		if !res.Ok() {
			return nil, fmt.Errorf("dashboard: %v", res.Errors)
		}

		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling dashboard: %w", err)
		}
		out = append(out, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
	}

	return out, nil
}
