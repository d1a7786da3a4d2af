// Package cmd implements the command-line interface of bouyomi. It provides a
// small command tree for controlling a running BouyomiChan application and for
// starting an emulated one.
//
// The package is organized into several subpackages:
//
//   - ctl: Commands sent to the application (say, pause, resume, skip, clear, status)
//   - serve: Command for starting the emulated application
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See bouyomi -help for a list of all commands.
package cmd
