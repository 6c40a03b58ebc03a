// Package config provides configuration loading, merging and validation for
// the go-safe-auth client.
//
// Configuration is assembled from several sources; for every field the first
// non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// [GetClientConfig] is the entry point used by cmd/client. The resulting
// [ClientConfig] renders the immutable [models.AuthOptions] handed to the
// auth kit via [ClientConfig.AuthOptions].
package config
