// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides fake decoders and sinks for tests.
package audiotest
