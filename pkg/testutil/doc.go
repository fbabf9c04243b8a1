// Package testutil provides utilities for testing wpg components.
//
// Key components:
//   - TestEnvironment: an isolated app directory in t.TempDir() with paths,
//     a real filesystem and settings wired together
//   - File helpers: CreateFile, CreateSymlink, ReadSymlink and friends
//
// Usage guidelines:
//   - Tests run against the real filesystem; symlink semantics matter here
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
