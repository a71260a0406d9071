// Package types defines the Hero entity, the Table interface implemented by
// storage backends, configuration, and the standard error values for the
// herodex store.
package types
