package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	Host      string           `yaml:"host"`
	Port      int              `yaml:"port"`
	LogLevel  string           `yaml:"log_level"`
	Network   MNetworkConfig   `yaml:"network"`
	Dashboard MDashboardConfig `yaml:"dashboard"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	UserAgent      string `yaml:"user_agent"`
	ProxyURL       string `yaml:"proxy_url"` // Optional
}

type MDashboardConfig struct {
	DefaultTicker string   `yaml:"default_ticker"`
	DefaultPeriod string   `yaml:"default_period"`
	Watchlist     []string `yaml:"watchlist"`
}
