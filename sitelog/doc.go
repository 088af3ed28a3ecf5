// Package sitelog builds a *zap.Logger from two environment knobs, mirroring
// the verbosity/caller-annotation controls of the original command-line
// tool.
//
// Loggers are constructed once at process startup and passed down
// explicitly; nothing in this package or its callers keeps a package-level
// global logger.
package sitelog
