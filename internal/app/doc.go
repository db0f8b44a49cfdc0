// Package app contains the application logic of the choice utility. It defines
// the App struct, its configuration, and the run lifecycle, decoupled from the
// command line parsing done by the cli package.
package app
