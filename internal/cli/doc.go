// Package cli turns command line arguments and environment variables into app.Config.
package cli
