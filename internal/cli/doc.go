// Package cli implements the command-line interface for hockey-sync.
//
// The cli package provides the Cobra-based CLI: the root command wires the
// config, OAuth client, calendar service, scrapers, and reconciler together
// and performs one full sync pass, and the auth subcommand runs the one-time
// OAuth2 consent flow.
package cli
