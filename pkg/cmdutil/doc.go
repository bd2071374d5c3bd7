// Package cmdutil provides the cobra plumbing shared by binaries that
// embed the logging middleware: a composable root-command builder,
// version metadata injected at build time, slog handler setup and
// predictable exit handling.
package cmdutil
