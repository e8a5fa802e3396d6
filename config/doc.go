// SPDX-License-Identifier: MIT

// Package config resolves the settings of the mazegen and mazed binaries
// from environment variables and optional .env files.
package config
