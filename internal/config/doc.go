// Package config loads and validates the configuration of the notes keeper
// binaries.
//
// Configuration is assembled from several sources, later sources overriding
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (-c / -config / CONFIG)
//  3. .env file (ENV_FILE, default ./.env) and environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for binaries using the flag
// package and [GetClientConfigWithOverrides] for cobra commands.
package config
