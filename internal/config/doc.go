// Package config provides configuration loading, merging, and validation
// facilities for the stream-console binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in development defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetConsoleConfig] for the terminal console and
// [GetDevAPIConfig] for the development API server. Both are views over
// [GetStructuredConfig].
package config
