// Package types defines the record and prediction entity types, the history
// filter and statistics value types, configuration, and the standard error
// values shared by the acrotrack tracker, session loader and CLI.
package types
