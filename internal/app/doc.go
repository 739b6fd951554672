// Package app is the composition root of the flightdeck console.
//
// Run wires the pieces together in a fixed order:
//
//  1. Load ~/.config/flightdeck/config.toml (defaults when missing) and apply
//     command-line overrides
//  2. Open the zerolog file logger; the terminal belongs to the UI
//  3. Load the dataset: a YAML file when configured, otherwise the built-in sample
//  4. Load user preferences (theme, sidebar)
//  5. Start the Bubble Tea UI and block until the user quits or the context ends
//
// The dataset is read once. Nothing polls or writes records afterwards; the
// only file the console writes besides its log is prefs.toml.
//
// Errors from steps 1 to 3 are returned to the caller, which prints them and
// exits non-zero.
package app
