// Package backend adapts wpg to the external color-generation tool.
//
// The tool's cache-file naming comes in two API shapes. Generator exposes
// both; Shim picks the right one behind a single ResolveCachePath call.
// The primary shape is always tried first. Only when it reports
// ErrSignatureMismatch is the tool's help text probed (once per Shim) for
// the --cols16 flag, and the alternate shape used if the flag is present.
// Any other failure propagates untouched.
package backend
