// Package types defines the core interfaces shared across wpg: the
// filesystem seam (FS), the injected settings view (Settings) and the
// Template record.
package types
