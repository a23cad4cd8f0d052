// Package config defines the format-agnostic sheet definition, along with
// the Loader interface for reading definitions from various sources.
//
// A `config.Definition` is the single input of the `sheet` package.
// Concrete loaders, such as the HCL one, are provided in separate packages.
package config
