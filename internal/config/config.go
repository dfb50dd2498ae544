package config

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	PDF      PDFConfig      `mapstructure:"pdf" yaml:"pdf"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest location settings
type ManifestConfig struct {
	// Path is the manifest file validated by default
	Path string `mapstructure:"path" yaml:"path"`
}

// PDFConfig contains PDF strategy settings
type PDFConfig struct {
	// InfoBinary is the pdfinfo executable used by the fallback strategy
	InfoBinary string `mapstructure:"info_binary" yaml:"info_binary"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for unset values
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if c.PDF.InfoBinary == "" {
		c.PDF.InfoBinary = DefaultInfoBinary
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
