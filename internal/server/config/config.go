// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the MovieGate server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Region / S3BaseEndpoint: object storage settings.
//   - S3PendingBucket: bucket holding unapproved submissions.
//   - S3FinalBucket: bucket holding approved, publicly listed records.
type Config struct {
	EndpointAddrHTTP string
	S3RootUser       string
	S3RootPassword   string
	S3Region         string
	S3BaseEndpoint   string
	S3PendingBucket  string
	S3FinalBucket    string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3PendingBucket = "movies-stage"
	c.S3FinalBucket = "movies-final"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
