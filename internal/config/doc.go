// SPDX-License-Identifier: EPL-2.0

// Package config loads audplay settings with viper.
//
// Sources, highest priority first: flags bound by the command, AUDPLAY_*
// environment variables, audplay.yaml (searched in ., $HOME/.audplay and
// /etc/audplay), then defaults.
//
//	backend:
//	  name: pipe        # empty for the default backend
//	  device: out.raw   # backend-defined
//	  format: S24_3     # F32, S32, S24, S24_3 or S16
//	decoder:
//	  kind: vorbis      # empty to pick by file extension
//	logging:
//	  level: info
//	  format: text      # or json
package config
