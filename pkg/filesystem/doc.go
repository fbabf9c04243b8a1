// Package filesystem provides filesystem implementations for wpg.
//
// This package contains the OS implementation of the types.FS interface
// and helpers built on top of it, such as CopyFile.
package filesystem
