// Package config loads the onboarding server configuration.
//
// Values come from four sources merged field by field with dario.cat/mergo,
// highest priority first: command line flags, ONBOARDING_ environment
// variables (caarlos0/env), an optional YAML file, and built-in defaults. The
// merged result is validated before it is returned.
package config
