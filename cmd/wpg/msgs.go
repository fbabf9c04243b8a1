package wpg

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Manage wallpapers, colorschemes and templates"
	MsgTemplateShort      = "Manage templates"
	MsgTemplateAddShort   = "Register a config file as a template"
	MsgTemplateRmShort    = "Remove templates by base file name"
	MsgTemplateListShort  = "List templates and their links"
	MsgCurrentShort       = "Show or change the current wallpaper"
	MsgCurrentSetShort    = "Point .current at a wallpaper"
	MsgCurrentShowShort   = "Print the current wallpaper"
	MsgSchemeShort        = "Locate and clean colorscheme artifacts"
	MsgSchemePathShort    = "Print the cache file path of a colorscheme"
	MsgSchemeSampleShort  = "Print the sample image path of a colorscheme"
	MsgSchemeCleanShort   = "Delete a colorscheme's artifacts for all backends"
	MsgWallpapersShort    = "List wallpapers"
	MsgScriptShort        = "Write the startup restore script"
	MsgConfigShort        = "Inspect and edit settings"
	MsgConfigShowShort    = "Print the effective settings"
	MsgConfigInitShort    = "Write the default settings file"
	MsgConfigSetShort     = "Store a setting in the settings file"
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"
	MsgManShort           = "Generate man pages"
	MsgBackendsShort      = "List known color backends"
	MsgNoTemplates        = "No templates."
	MsgNoWallpapers       = "No wallpapers."
	MsgTemplateAdded      = "added %s -> %s\n"
	MsgTemplateNotLinked  = "added %s, but the link could not be created (see log)\n"
	MsgTemplateRemoved    = "%s %s\n"
	MsgSchemeCleanSummary = "removed %d file(s), %d missing, %d failed\n"
	MsgConfigWritten      = "wrote %s\n"
	MsgConfigExists       = "%s already exists\n"
	MsgScriptWritten      = "wrote %s\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadSettings = "failed to load settings: %w"
	MsgErrLoadStyles   = "failed to load styles: %w"
	MsgErrUnknownKey   = "unknown setting %q"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "App directory (default $WPG_DIR or $XDG_CONFIG_HOME/wpg)"
	MsgFlagBase    = "Use this file as the template content instead of the config file"
	MsgFlagBackend = "Backend name (default: the backend setting)"
	MsgFlagPattern = "Only list names fully matching this regular expression"
	MsgFlagManDir  = "Directory to write man pages into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/template-add-long.txt
	msgTemplateAddLongRaw string
	MsgTemplateAddLong    = strings.TrimSpace(msgTemplateAddLongRaw)

	//go:embed msgs/template-add-example.txt
	msgTemplateAddExampleRaw string
	MsgTemplateAddExample    = strings.TrimRight(msgTemplateAddExampleRaw, "\n")

	//go:embed msgs/scheme-clean-long.txt
	msgSchemeCleanLongRaw string
	MsgSchemeCleanLong    = strings.TrimSpace(msgSchemeCleanLongRaw)

	//go:embed msgs/script-long.txt
	msgScriptLongRaw string
	MsgScriptLong    = strings.TrimSpace(msgScriptLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
