// Package templates manages the templates directory.
//
// A template is a pair inside the templates directory:
//
//	<name>.base   managed copy of an external config file
//	<name>        symlink to the external config file itself
//
// Adding a template always writes <config>.bak next to the external file
// first. Backups are never removed by this package.
package templates
