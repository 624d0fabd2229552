// SPDX-License-Identifier: EPL-2.0

// Command audplay plays an audio file through one of the compiled-in
// backends.
package main

func main() {
	Execute()
}
