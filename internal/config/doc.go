// Package config defines the format-agnostic run model for the application,
// along with the Loader interface for reading it from configuration files.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the interface, such as for HCL and YAML, are
// provided in separate packages.
package config
