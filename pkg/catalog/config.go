package catalog

import "fmt"

// Buffer capacity bounds, inclusive. Values mirror the range the target
// device can reasonably dedicate to a translation buffer.
const (
	MinBufferSize     = 64
	MaxBufferSize     = 2048
	DefaultBufferSize = 256
)

// DefaultLocale is used when a config does not name one.
const DefaultLocale = "en"

// Config is the compile-time configuration surface, typically decoded from
// a project YAML file.
type Config struct {
	// Sources lists the locale documents to compile, relative to the
	// filesystem passed to CompileFS. Required.
	Sources []string `yaml:"sources"`

	// DefaultLocale is the fallback locale identifier. It must match one
	// of the compiled locales. Defaults to "en".
	DefaultLocale string `yaml:"default_locale"`

	// UsePSRAM prefers the external allocation region for the runtime
	// translation buffer, with the primary region as fallback.
	UsePSRAM bool `yaml:"use_psram"`

	// BufferSize bounds the runtime translation buffer in bytes. Must fall
	// within [MinBufferSize, MaxBufferSize]. Defaults to DefaultBufferSize.
	BufferSize int `yaml:"buffer_size"`
}

// Validate applies defaults and checks the configuration before any
// compilation work happens.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.BufferSize < MinBufferSize || c.BufferSize > MaxBufferSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBufferSizeRange, c.BufferSize, MinBufferSize, MaxBufferSize)
	}
	return nil
}
