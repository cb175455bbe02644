// Package client implements the interactive client application runtime.
//
// It ties the terminal UI, the client services, and the background refresh
// workers into a single process lifecycle.
package client
