// Package logtail reads the end of the console log for the Settings page.
//
// Read uses a ring buffer so only the last maxLines lines are kept in memory
// regardless of file size. Format turns zerolog JSON entries into compact
// "15:04:05 INF message key=value" lines using zerolog's ConsoleWriter with
// colors disabled; the UI applies its own theme colors.
package logtail
