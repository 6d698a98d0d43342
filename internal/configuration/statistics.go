package configuration

type StatisticsConfig struct {
	// Whether to enable the prometheus exporter or not
	Enabled bool `json:"enabled"`
	// The port to expose the exporter on
	Port int `json:"port"`
}
