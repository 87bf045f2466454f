package conf

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bunch-format/bunch/dirbuild"
	"github.com/bunch-format/bunch/encode"
	"github.com/bunch-format/bunch/gomap"
	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/parse"
	"github.com/bunch-format/bunch/token"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfig string

var ErrConfig = errors.New("configuration error")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Markers   token.Markers
	Indent    string
	Extension string
	Order     ir.Order
	LogLevel  slog.Level
	Color     string
}

// Update applies non-nil values from a configDTO.
func (c *Config) Update(dto configDTO) error {
	if dto.CommentMarker != nil {
		c.Markers.Comment = *dto.CommentMarker
	}
	if dto.AssignMarker != nil {
		c.Markers.Assign = *dto.AssignMarker
	}
	if dto.BlockMarker != nil {
		c.Markers.Block = *dto.BlockMarker
	}
	if dto.Indent != nil {
		c.Indent = *dto.Indent
	}
	if dto.Extension != nil {
		c.Extension = *dto.Extension
	}
	if dto.Order != nil {
		switch strings.ToLower(*dto.Order) {
		case "insertion":
			c.Order = ir.InsertionOrder
		case "sorted":
			c.Order = ir.SortedOrder
		default:
			return fmt.Errorf("%w: unknown order %q", ErrConfig, *dto.Order)
		}
	}
	if dto.LogLevel != nil {
		if err := c.LogLevel.UnmarshalText([]byte(*dto.LogLevel)); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	if dto.Color != nil {
		switch *dto.Color {
		case ColorAuto, ColorAlways, ColorNever:
			c.Color = *dto.Color
		default:
			return fmt.Errorf("%w: unknown color mode %q", ErrConfig, *dto.Color)
		}
	}
	return nil
}

// Validate checks the settings which Update cannot check one at a time.
func (c *Config) Validate() error {
	if err := c.Markers.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.Indent == "" || strings.TrimSpace(c.Indent) != "" {
		return fmt.Errorf("%w: indent must be non-empty whitespace, got %q", ErrConfig, c.Indent)
	}
	if c.Extension == "" {
		return fmt.Errorf("%w: empty extension", ErrConfig)
	}
	return nil
}

func (c *Config) ParseOptions() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseMarkers(c.Markers),
		parse.ParseOrder(c.Order),
	}
}

func (c *Config) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeMarkers(c.Markers),
		encode.EncodeIndent(c.Indent),
	}
}

func (c *Config) DirOptions() []dirbuild.DirOption {
	return []dirbuild.DirOption{
		dirbuild.WithExtension(c.Extension),
		dirbuild.WithParseOptions(c.ParseOptions()...),
	}
}

// Default returns the embedded defaults.
func Default() Config {
	c := Config{}
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded defaults: %v", err))
	}
	if err := c.Update(dto); err != nil {
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return c
}

// ConfigSource orchestrates loading configuration from multiple sources.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// DefaultSource locates config.toml under the user configuration
// directory.
func DefaultSource() *ConfigSource {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &ConfigSource{}
	}
	return SourceAt(filepath.Join(dir, "bunch", "config.toml"))
}

// SourceAt returns the source with main file path and its drop-in
// directory path + ".d".
func SourceAt(path string) *ConfigSource {
	return &ConfigSource{Path: path, DropInDir: path + ".d"}
}

// Read loads and returns the complete Config by merging all layers:
// 1. Embedded defaults
// 2. Main configuration file
// 3. Drop-in files
func (cs *ConfigSource) Read() (Config, error) {
	resolved := Default()

	if cs.Path != "" {
		data, err := os.ReadFile(cs.Path)
		switch {
		case err == nil:
			dto, err := parseConfigDTO(string(data))
			if err != nil {
				return resolved, fmt.Errorf("failed to parse %s: %w", cs.Path, err)
			}
			if err := resolved.Update(dto); err != nil {
				return resolved, fmt.Errorf("%s: %w", cs.Path, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return resolved, fmt.Errorf("failed to load %s: %w", cs.Path, err)
		}
	}

	paths, err := cs.findDropInFiles()
	if err != nil {
		slog.Error("failed to load drop-in files", "error", err, "dir", cs.DropInDir)
		return resolved, err
	}
	for _, path := range paths {
		dto, err := parseDropIn(path)
		if err != nil {
			return resolved, err
		}
		if err := resolved.Update(dto); err != nil {
			return resolved, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := resolved.Validate(); err != nil {
		return resolved, err
	}
	return resolved, nil
}

type configDTO struct {
	CommentMarker *string `toml:"comment-marker" json:"comment-marker"`
	AssignMarker  *string `toml:"assign-marker" json:"assign-marker"`
	BlockMarker   *string `toml:"block-marker" json:"block-marker"`
	Indent        *string `toml:"indent" json:"indent"`
	Extension     *string `toml:"extension" json:"extension"`
	Order         *string `toml:"order" json:"order"`
	LogLevel      *string `toml:"log-level" json:"log-level"`
	Color         *string `toml:"color" json:"color"`
}

// parseConfigDTO parses a TOML string into a configDTO.
func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO
	md, err := toml.Decode(data, &dto)
	if err != nil {
		return dto, fmt.Errorf("%w: failed to parse TOML: %w", ErrConfig, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return dto, fmt.Errorf("%w: unknown key %q", ErrConfig, undec[0].String())
	}
	return dto, nil
}

// parseBunchDTO parses a bunch document into a configDTO. Settings are
// read with the default markers.
func parseBunchDTO(data []byte) (configDTO, error) {
	var dto configDTO
	if err := gomap.Load(data, &dto, gomap.Strict(true)); err != nil {
		return dto, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return dto, nil
}

func parseDropIn(path string) (configDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return configDTO{}, err
	}
	var dto configDTO
	switch filepath.Ext(path) {
	case ".toml":
		dto, err = parseConfigDTO(string(data))
	default:
		dto, err = parseBunchDTO(data)
	}
	if err != nil {
		return dto, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return dto, nil
}

// findDropInFiles finds and returns sorted paths to drop-in configuration files.
// Returns nil if the drop-in directory doesn't exist (not an error).
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".toml", token.DefaultExtension:
			filenames = append(filenames, filepath.Join(cs.DropInDir, entry.Name()))
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}
