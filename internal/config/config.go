// Package config loads bootgen.yaml, the file form of a generation request
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bootgen-dev/bootgen/internal/naming"
	"github.com/bootgen-dev/bootgen/internal/project"
	"gopkg.in/yaml.v3"
)

// FileName is the spec file searched for by LoadConfig
const FileName = "bootgen.yaml"

var ErrConfigNotFound = errors.New("no " + FileName + " found")

// Config represents the bootgen.yaml configuration file
type Config struct {
	Project      string         `yaml:"project" validate:"required,excludesall=/\\"`
	BasePackage  string         `yaml:"basePackage" validate:"required,javapackage"`
	Module       string         `yaml:"module" validate:"required"`
	BuildTool    string         `yaml:"buildTool"`
	ConfigFormat string         `yaml:"configFormat" validate:"oneof=properties yml yaml"`
	Output       string         `yaml:"output"`
	Database     DatabaseConfig `yaml:"database"`
}

// DatabaseConfig contains the datasource choices
type DatabaseConfig struct {
	Type              string `yaml:"type"`
	Name              string `yaml:"name"`
	Dialect           string `yaml:"dialect"`
	CreateIfNotExists bool   `yaml:"createIfNotExists"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
}

// LoadConfig loads bootgen.yaml from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads and validates a spec file at a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	if err := ValidateStruct(defaultValidator, &config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	c.BasePackage = naming.NormalizePackage(c.BasePackage)
	c.BuildTool = strings.ToLower(strings.TrimSpace(c.BuildTool))
	c.ConfigFormat = strings.ToLower(strings.TrimSpace(c.ConfigFormat))
	c.Database.Type = strings.ToLower(strings.TrimSpace(c.Database.Type))

	if c.BuildTool == "" {
		c.BuildTool = string(project.BuildMaven)
	}
	if c.ConfigFormat == "" {
		c.ConfigFormat = string(project.FormatProperties)
	}
	if c.Database.Type == "" {
		c.Database.Type = string(project.DatabaseH2)
	}
	if c.Output == "" {
		c.Output = "."
	}
}

// Spec converts the file into a project spec. Unknown build tools and
// database types fall back with a warning; an unknown format is an error.
func (c *Config) Spec() (project.Spec, []project.Warning, error) {
	var warnings []project.Warning

	tool, w := project.ParseBuildTool(c.BuildTool)
	if w != nil {
		warnings = append(warnings, *w)
	}

	format, err := project.ParseConfigFormat(c.ConfigFormat)
	if err != nil {
		return project.Spec{}, nil, err
	}

	dbType, w := project.ParseDatabaseType(c.Database.Type)
	if w != nil {
		warnings = append(warnings, *w)
	}

	spec := project.Spec{
		ProjectName:  c.Project,
		BasePackage:  naming.NormalizePackage(c.BasePackage),
		BuildTool:    tool,
		ConfigFormat: format,
		Database: project.Database{
			Type:              dbType,
			Name:              c.Database.Name,
			Dialect:           c.Database.Dialect,
			CreateIfNotExists: c.Database.CreateIfNotExists,
			Username:          c.Database.Username,
			Password:          c.Database.Password,
		},
	}
	return spec, warnings, nil
}

// OutputDir resolves the output directory against the directory holding the
// spec file
func (c *Config) OutputDir(configDir string) string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(configDir, c.Output)
}

// loadConfigFromDir searches for bootgen.yaml in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, startDir)
}
