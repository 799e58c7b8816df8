// Package types defines the Store interface, entity types, and standard
// error values for the promptdeck persistence layer.
package types
