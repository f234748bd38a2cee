// Package config implements project configuration for i18nlint.
//
// When a .i18nlint.yaml file exists in the project root it is the sole
// source of truth. Without one, the project layout is auto-detected by
// probing common frontend locale directory conventions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/i18nlint/i18nlint/annotation"
	"github.com/i18nlint/i18nlint/scan"
)

// FileName is the default config file name.
const FileName = ".i18nlint.yaml"

// Config holds the resolved project settings for one run.
type Config struct {
	// SourceDirs are the directories scanned for source files,
	// relative to the project root.
	SourceDirs []string `yaml:"source_dirs,omitempty"`
	// LocalesDir contains the per-locale catalog files.
	LocalesDir string `yaml:"locales_dir,omitempty"`
	// Locales restricts which locales are checked. Empty = every catalog
	// found in LocalesDir.
	Locales []string `yaml:"locales,omitempty"`
	// Extensions are the source file extensions to scan.
	Extensions []string `yaml:"extensions,omitempty"`
	// Markers overrides the annotation marker spellings.
	Markers MarkerConfig `yaml:"markers,omitempty"`
	// TechnicalTokens extends the case-sensitive technical-token
	// vocabulary (app error codes, enum constants).
	TechnicalTokens []string `yaml:"technical_tokens,omitempty"`
	// Vocabulary extends the case-insensitive common-word vocabulary with
	// project domain nouns.
	Vocabulary []string `yaml:"vocabulary,omitempty"`
}

// MarkerConfig mirrors annotation.Markers in the YAML schema.
type MarkerConfig struct {
	File       string `yaml:"file,omitempty"`
	Line       string `yaml:"line,omitempty"`
	BlockStart string `yaml:"block_start,omitempty"`
	BlockEnd   string `yaml:"block_end,omitempty"`
}

// localeDirCandidates are probed, in order, during auto-detection.
var localeDirCandidates = []string{
	filepath.Join("frontend", "src", "i18n", "locales"),
	filepath.Join("src", "i18n", "locales"),
	filepath.Join("public", "locales"),
	filepath.Join("i18n", "locales"),
	"locales",
}

// sourceDirCandidates are probed, in order, during auto-detection.
var sourceDirCandidates = []string{
	filepath.Join("frontend", "src"),
	"src",
	"app",
	"web",
}

// Load reads .i18nlint.yaml from rootDir. Returns nil without error when the
// file does not exist.
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Detect probes rootDir for a conventional frontend layout and returns a
// best-effort Config. Missing pieces stay empty; Resolve fills defaults.
func Detect(rootDir string) *Config {
	cfg := &Config{}

	for _, cand := range localeDirCandidates {
		if isDir(filepath.Join(rootDir, cand)) {
			cfg.LocalesDir = cand
			break
		}
	}
	for _, cand := range sourceDirCandidates {
		if isDir(filepath.Join(rootDir, cand)) {
			cfg.SourceDirs = []string{cand}
			break
		}
	}

	return cfg
}

// Resolve loads the config file when present, falls back to detection, and
// applies defaults. The returned config is complete enough to run with.
func Resolve(rootDir string) (*Config, error) {
	cfg, err := Load(rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Detect(rootDir)
	}

	if len(cfg.SourceDirs) == 0 {
		cfg.SourceDirs = []string{"."}
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = scan.DefaultExtensions
	}
	return cfg, nil
}

// AnnotationMarkers returns the configured marker set, with defaults for
// any spelling left empty.
func (c *Config) AnnotationMarkers() annotation.Markers {
	m := annotation.DefaultMarkers
	if c.Markers.File != "" {
		m.File = c.Markers.File
	}
	if c.Markers.Line != "" {
		m.Line = c.Markers.Line
	}
	if c.Markers.BlockStart != "" {
		m.BlockStart = c.Markers.BlockStart
	}
	if c.Markers.BlockEnd != "" {
		m.BlockEnd = c.Markers.BlockEnd
	}
	return m
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
