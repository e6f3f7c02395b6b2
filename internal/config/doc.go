// Package config provides configuration structures and utilities for favbooks.
// It defines where the visitor list is read from, which author the presence
// check looks for, and how the report is rendered.
package config
