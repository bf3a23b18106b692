// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later ones fill remaining gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// The main entry points are [GetClientConfig] for the TUI client and
// [GetServerConfig] for the development auth server.
package config
