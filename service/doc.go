// SPDX-License-Identifier: MIT

// Package service exposes maze generation over HTTP with gin.
//
// Every response carries an X-Request-ID header and an access log entry;
// successful maze responses also carry X-Maze-Seed.
package service
