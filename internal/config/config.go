package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aurochs-dev/aurochs/internal/errors"
	"github.com/aurochs-dev/aurochs/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "aurochs.yaml"

	// DefaultAddr is the default preview server address.
	DefaultAddr = ":8080"

	// DefaultRoot is the default directory holding tree documents.
	DefaultRoot = "pages"

	// DefaultPoll is the default interval between change scans.
	DefaultPoll = 500 * time.Millisecond
)

// Config represents the complete aurochs.yaml configuration.
type Config struct {
	// Render controls how trees are serialized.
	Render RenderConfig `yaml:"render"`

	// Serve contains preview server settings.
	Serve ServeConfig `yaml:"serve"`

	// Publish contains S3 publishing settings.
	Publish PublishConfig `yaml:"publish"`

	// path stores the path where the config was loaded from.
	path string
}

// RenderConfig mirrors render.Config in file form.
type RenderConfig struct {
	// Indent is the number of spaces per depth level. Zero disables
	// indentation.
	Indent int `yaml:"indent" validate:"gte=0,lte=16"`

	// Escape is "html" or "minimal".
	Escape string `yaml:"escape" validate:"oneof=html minimal"`

	// Strict rejects content on void elements.
	Strict bool `yaml:"strict"`

	// Minify collapses whitespace in the output.
	Minify bool `yaml:"minify"`

	// Doctype prefixes output with <!DOCTYPE html>.
	Doctype bool `yaml:"doctype"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr" validate:"required"`

	// Root is the directory holding tree documents, relative to the
	// configuration file.
	Root string `yaml:"root" validate:"required"`

	// Reload enables live reload over WebSocket.
	Reload bool `yaml:"reload"`

	// Poll is the interval between scans of Root for changes.
	Poll time.Duration `yaml:"poll" validate:"gte=0"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `yaml:"bucket"`

	// Prefix is prepended to every object key.
	Prefix string `yaml:"prefix"`

	// Region overrides the region from the AWS environment.
	Region string `yaml:"region"`

	// CacheControl is sent as the Cache-Control header of each object.
	CacheControl string `yaml:"cacheControl"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent: render.DefaultIndentWidth,
			Escape: render.EscapeHTML.String(),
		},
		Serve: ServeConfig{
			Addr:   DefaultAddr,
			Root:   DefaultRoot,
			Reload: true,
			Poll:   DefaultPoll,
		},
	}
}

// Load reads aurochs.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing
// file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.New(errors.CodeConfig).Wrap(err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.CodeConfig).
			WithDetail("%s", "Failed to parse "+ConfigFileName+": "+err.Error()).
			WithLocation(path, yamlErrorLine(err), 0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var yamlLine = regexp.MustCompile(`line (\d+):`)

// yamlErrorLine returns the first line number named in a yaml.v3 error,
// or 0 when it names none.
func yamlErrorLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = ConfigFileName
	}
	return c.SaveTo(c.path)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.path = path
	return nil
}

// Path returns the path of the configuration file.
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory containing the configuration file.
func (c *Config) Dir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// RootPath returns the absolute-or-relative path of the pages directory,
// resolved against the configuration directory.
func (c *Config) RootPath() string {
	if filepath.IsAbs(c.Serve.Root) {
		return c.Serve.Root
	}
	return filepath.Join(c.Dir(), c.Serve.Root)
}

// RenderConfig converts the file settings into a render.Config.
func (c *Config) RenderConfig() render.Config {
	mode, err := render.ParseEscapeMode(c.Render.Escape)
	if err != nil {
		mode = render.EscapeHTML
	}
	indent := c.Render.Indent
	if indent == 0 {
		indent = -1
	}
	return render.Config{
		IndentWidth: indent,
		Escape:      mode,
		Strict:      c.Render.Strict,
		Minify:      c.Render.Minify,
		Doctype:     c.Render.Doctype,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.New(errors.CodeConfig).Wrap(err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describe(fe))
	}
	e := errors.New(errors.CodeConfig).WithDetail("%s", strings.Join(problems, "; "))
	if c.path != "" {
		e.Location = &errors.Location{File: c.path}
	}
	return e
}

// describe turns a validation failure into a readable sentence.
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}

// Exists reports whether dir contains a configuration file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir looking for aurochs.yaml and
// returns the directory containing it.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest configuration above the working
// directory, or the defaults rooted at the working directory.
func LoadFromWorkingDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(cwd)
	if err != nil {
		root = cwd
	}
	return Load(root)
}
