// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig locates the decomp project data.
type ProjectConfig struct {
	Dir string `yaml:"dir"` // root of the decomp source tree
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Scale   int    `yaml:"scale"`   // integer upscale factor, 1 = native size
	Indexed bool   `yaml:"indexed"` // quantize output to paletted PNG
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	Workers int    `yaml:"workers"` // concurrent map workers, 1 = sequential
	Filter  string `yaml:"filter"`  // only render maps whose name contains this
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Dir: ".",
		},
		Output: OutputConfig{
			Dir:     "output/maps",
			Scale:   1,
			Indexed: false,
		},
		Render: RenderConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
