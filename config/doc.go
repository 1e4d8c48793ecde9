// Package config loads and validates nosvault server configuration.
//
// Configuration is layered with viper: built-in defaults, then yaml
// config files, then NOSVAULT_-prefixed environment variables, then
// explicitly set CLI flags. The resulting struct is checked with
// go-playground/validator tags before use.
package config
