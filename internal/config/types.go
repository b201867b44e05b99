package config

// Config represents the netgraph configuration file.
type Config struct {
	// Interval is the sampling interval in seconds. Fractional values are
	// allowed (e.g. 0.5 for two samples per second).
	Interval float64 `yaml:"interval" mapstructure:"interval"`

	// History is the number of samples kept per interface. It is also the
	// width of the chart's x-axis in ticks.
	History int `yaml:"history" mapstructure:"history"`

	// Stats toggles the summary panel next to the chart.
	Stats bool `yaml:"stats" mapstructure:"stats"`

	// AutoScale recomputes the y-axis limit from the largest observed
	// sample. When false the chart uses its own default scaling.
	AutoScale bool `yaml:"auto_scale" mapstructure:"auto_scale"`

	// Theme selects the color palette: "auto", "dark", or "light".
	// "auto" detects the terminal background.
	Theme string `yaml:"theme" mapstructure:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:  1.0,
		History:   60,
		Stats:     true,
		AutoScale: true,
		Theme:     "auto",
	}
}
