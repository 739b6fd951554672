// Package fleet defines the device and fleet records shown by flightdeck.
//
// Records are plain values. Nothing in the console mutates them after the
// dataset is loaded; list pages filter and highlight them but never edit.
//
// Device health is one of HEALTHY, DEGRADED, ERROR or UNKNOWN. Fleet validity
// is VALID or SELECTOR_OVERLAP. Parse helpers accept the mixed spellings found
// in hand-written dataset files.
//
// FirmwareSummary compares firmware strings as semantic versions so that
// "v2.10.0" sorts above "v2.9.1".
package fleet
