// Package config defines the application configuration structure and loads
// it from environment variables and an optional YAML file, validating the
// result before any component sees it.
package config
