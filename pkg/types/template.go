package types

// BaseSuffix marks a managed template copy
const BaseSuffix = ".base"

// BackupSuffix is appended to an external config file before it is copied
const BackupSuffix = ".bak"

// Template describes one managed template in the templates directory
type Template struct {
	// Name is the base filename, e.g. "kitty_kitty.conf.base"
	Name string
	// BasePath is the absolute path of the base file
	BasePath string
	// LinkPath is the base path with the .base suffix removed
	LinkPath string
	// Target is where the live symlink points; empty when not linked
	Target string
	// Linked is true when LinkPath is a symlink
	Linked bool
}
