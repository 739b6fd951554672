// Package config loads the flightdeck configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flightdeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Configuration Fields
//
//	dataset      = "~/fleet/demo.yaml"   # YAML dataset; empty uses the built-in sample
//	log_file     = "~/.local/state/flightdeck/flightdeck.log"
//	log_level    = "info"                # zerolog level name
//	start_page   = "overview"            # overview, devices, fleets, settings
//	organization = "Charlie Services"    # label on the Devices and Fleets pages
//
// Values are trimmed. A leading ~ expands to the user's home directory and
// every path is made absolute.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML, unknown
// start pages and unknown log levels are returned as wrapped errors so the
// caller can report them before the terminal UI takes over the screen.
package config
