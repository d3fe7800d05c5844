package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/example/curriculum-gen/internal/generator"
	"github.com/example/curriculum-gen/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	defaultInput  = "components.md"
	defaultOutput = "curriculum.json"
	defaultFormat = "json"
)

// ErrUnsupportedFormat is returned for output formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported format")

// GenerateConfig holds configuration for catalog generation.
type GenerateConfig struct {
	InputPath  string
	OutputPath string
	Format     string
	ConfigPath string
	Strict     bool
	Verbose    bool
}

// GenerateCatalog reads the outline, builds and checks the catalog, writes it,
// and prints the topic count to stdout. When the catalog itself goes to stdout
// the count line goes to errOut instead.
func GenerateCatalog(config *GenerateConfig, log *logger.Logger, stdout, errOut io.Writer) error {
	return generateWithFS(config, log, defaultFileSystem, stdout, errOut)
}

func generateWithFS(config *GenerateConfig, log *logger.Logger, fs FileSystem, stdout, errOut io.Writer) error {
	if err := loadConfigFile(config, fs); err != nil {
		return err
	}
	log = log.With("input", config.InputPath, "output", config.OutputPath)

	data, err := fs.ReadFile(config.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	gen := generator.New(log)
	gen.ParseLines(generator.SplitLines(string(data)))
	catalog := gen.Generate()

	if err := generator.Validate(catalog); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}
	if config.Strict {
		if err := generator.CheckUnique(catalog); err != nil {
			return err
		}
	}

	encoded, err := encodeCatalog(catalog, config.Format)
	if err != nil {
		return err
	}

	status := stdout
	if config.OutputPath == "-" {
		if _, err := stdout.Write(encoded); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		status = errOut
	} else if err := writeFileReplacing(fs, config.OutputPath, encoded); err != nil {
		return err
	}

	fmt.Fprintf(status, "Generated %s with %d topics\n", displayName(config.OutputPath), len(catalog.Topics))
	return nil
}

func displayName(output string) string {
	if output == "-" {
		return "catalog"
	}
	return filepath.Base(output)
}

func loadConfigFile(config *GenerateConfig, fs FileSystem) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := fs.ReadFile(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Curriculum struct {
			Input  string `yaml:"input"`
			Output string `yaml:"output"`
			Format string `yaml:"format"`
			Strict bool   `yaml:"strict"`
		} `yaml:"curriculum"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.InputPath == defaultInput && cfg.Curriculum.Input != "" {
		config.InputPath = cfg.Curriculum.Input
	}
	if config.OutputPath == defaultOutput && cfg.Curriculum.Output != "" {
		config.OutputPath = cfg.Curriculum.Output
	}
	if config.Format == defaultFormat && cfg.Curriculum.Format != "" {
		config.Format = cfg.Curriculum.Format
	}
	if !config.Strict {
		config.Strict = cfg.Curriculum.Strict
	}

	return nil
}

// encodeCatalog renders the whole catalog before anything is written.
func encodeCatalog(catalog *generator.Catalog, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(catalog); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (use json or yaml)", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}
