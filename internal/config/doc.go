// Package config defines the application configuration structures and the
// loading logic that populates them from config files and environment
// variables. Configuration is validated before the application starts, so
// a misconfigured process fails fast rather than at first request.
package config
