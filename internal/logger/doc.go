// SPDX-License-Identifier: EPL-2.0

// Package logger configures log/slog for the audplay command.
package logger
