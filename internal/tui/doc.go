// Package tui implements the terminal user interface of the vault client.
//
// It is a single bubbletea program with four screens (auth, list, detail,
// form) plus a delete-confirmation overlay and transient status toasts. All
// record state lives in the client service layer; the UI only reads the
// snapshot and dispatches operations.
package tui
