// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, and translating
// HCL sheet blocks into the format-agnostic definition model.
package hcl
