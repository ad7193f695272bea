// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drone-dataset/internal/annotation"
	"drone-dataset/internal/quadrant"
)

// Frame is the pixel size of the source video frames.
type Frame struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Quadrant configures the quadrant splitter.
type Quadrant struct {
	Threshold float64 `yaml:"threshold"`
}

// Output configures where label files are written.
type Output struct {
	Dir string `yaml:"dir"`
}

// Report configures the statistics rows emitted per processed file.
type Report struct {
	Dataset   string `yaml:"dataset"`
	File      string `yaml:"file"`
	PrintOnly bool   `yaml:"print_only"`
	Table     string `yaml:"table"`
}

// DatasetConfig is the root configuration of the dataset tools.
type DatasetConfig struct {
	Frame          Frame          `yaml:"frame"`
	Classes        map[string]int `yaml:"classes"`
	DefaultClassID int            `yaml:"default_class_id"`
	Quadrant       Quadrant       `yaml:"quadrant"`
	Output         Output         `yaml:"output"`
	Report         Report         `yaml:"report"`
}

// Default returns the configuration used when no config file is given.
func Default() *DatasetConfig {
	return &DatasetConfig{
		Frame:          Frame{Width: 1920, Height: 1080},
		Classes:        map[string]int{"drone": 0},
		DefaultClassID: 1,
		Quadrant:       Quadrant{Threshold: quadrant.DefaultThreshold},
		Output:         Output{Dir: "labels"},
		Report:         Report{Dataset: "default", Table: "dataset_label_stats"},
	}
}

// ClassMap returns the configured label mapping.
func (c *DatasetConfig) ClassMap() annotation.ClassMap {
	return annotation.ClassMap{IDs: c.Classes, Default: c.DefaultClassID}
}

// Splitter returns a quadrant splitter using the configured threshold.
func (c *DatasetConfig) Splitter() quadrant.Splitter {
	return quadrant.Splitter{Threshold: c.Quadrant.Threshold}
}

// Load loads YAML config and validates it against a CUE schema. An empty
// cueSchemaPath uses the built-in schema. Fields missing from the file keep
// their Default values.
func Load(configPath, cueSchemaPath string) (*DatasetConfig, error) {
	// Validate with CUE first
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
