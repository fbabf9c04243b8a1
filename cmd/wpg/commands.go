package wpg

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wpg/internal/version"
	"github.com/arthur-debert/wpg/pkg/artifacts"
	"github.com/arthur-debert/wpg/pkg/config"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/style"
	"github.com/arthur-debert/wpg/pkg/templates"
	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type rootOptions struct {
	verbosity int
	dir       string
}

func (o *rootOptions) app() (*app, error) {
	return newApp(o.dir)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "wpg",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", MsgFlagDir)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newTemplateCmd(opts))
	rootCmd.AddCommand(newCurrentCmd(opts))
	rootCmd.AddCommand(newSchemeCmd(opts))
	rootCmd.AddCommand(newWallpapersCmd(opts))
	rootCmd.AddCommand(newBackendsCmd(opts))
	rootCmd.AddCommand(newScriptCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newTemplateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"t"},
		Short:   MsgTemplateShort,
		GroupID: "core",
	}

	var baseFile string
	addCmd := &cobra.Command{
		Use:     "add <config-file>",
		Short:   MsgTemplateAddShort,
		Long:    MsgTemplateAddLong,
		Example: MsgTemplateAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.paths.EnsureLayout(); err != nil {
				return err
			}

			tmpl, err := a.templates().Add(args[0], baseFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tmpl.Linked {
				fmt.Fprintf(out, MsgTemplateAdded, a.styles.Render(style.Name, tmpl.Name), a.styles.Render(style.Path, tmpl.Target))
			} else {
				fmt.Fprintf(out, MsgTemplateNotLinked, a.styles.Render(style.Warning, tmpl.Name))
			}
			return nil
		},
	}
	addCmd.Flags().StringVarP(&baseFile, "base", "b", "", MsgFlagBase)

	rmCmd := &cobra.Command{
		Use:               "rm <name.base>...",
		Aliases:           []string{"remove"},
		Short:             MsgTemplateRmShort,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: templateNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			store := a.templates()
			out := cmd.OutOrStdout()
			for _, name := range args {
				result := store.Delete(name)
				fmt.Fprintf(out, MsgTemplateRemoved, a.styles.Indicator(result.Base.Removed), name)
				if result.Link.Removed {
					fmt.Fprintf(out, MsgTemplateRemoved, a.styles.Indicator(true), templates.LinkName(name))
				}
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgTemplateListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			list, err := a.templates().List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, a.styles.Render(style.Muted, MsgNoTemplates))
				return nil
			}
			for _, tmpl := range list {
				line := a.styles.Indicator(tmpl.Linked) + " " + a.styles.Render(style.Name, tmpl.Name)
				if tmpl.Linked {
					line += " " + a.styles.Render(style.Link, "-> "+tmpl.Target)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd, rmCmd, listCmd)
	return cmd
}

// templateNamesCompletion completes existing base file names
func templateNamesCompletion(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		a, err := opts.app()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		list, err := a.templates().List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool, len(args))
		for _, arg := range args {
			seen[arg] = true
		}

		var names []string
		for _, tmpl := range list {
			if !seen[tmpl.Name] {
				names = append(names, tmpl.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// wallpaperCompletion completes names from the wallpapers directory
func wallpaperCompletion(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		a, err := opts.app()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		walls, err := a.resolver().Wallpapers()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return walls, cobra.ShellCompDirectiveNoFileComp
	}
}

func newCurrentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "current",
		Short:   MsgCurrentShort,
		GroupID: "core",
	}

	setCmd := &cobra.Command{
		Use:               "set <wallpaper>",
		Short:             MsgCurrentSetShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: wallpaperCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.paths.EnsureLayout(); err != nil {
				return err
			}
			if _, err := a.fs.Stat(a.paths.WallpaperPath(args[0])); err != nil {
				log.Warn().Str("wallpaper", args[0]).Msg("wallpaper does not exist, linking anyway")
			}
			return a.pointer().Change(args[0])
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgCurrentShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			name, err := a.pointer().Get()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.AddCommand(setCmd, showCmd)
	return cmd
}

func newSchemeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scheme",
		Short:   MsgSchemeShort,
		GroupID: "core",
	}

	var backendName string

	pathCmd := &cobra.Command{
		Use:               "path <wallpaper>",
		Short:             MsgSchemePathShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: wallpaperCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			path, err := a.resolver().CachePath(args[0], backendName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	sampleCmd := &cobra.Command{
		Use:               "sample <wallpaper>",
		Short:             MsgSchemeSampleShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: wallpaperCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.resolver().SamplePath(args[0], backendName))
			return nil
		},
	}

	for _, c := range []*cobra.Command{pathCmd, sampleCmd} {
		c.Flags().StringVar(&backendName, "backend", "", MsgFlagBackend)
	}

	cleanCmd := &cobra.Command{
		Use:               "clean <colorscheme>",
		Short:             MsgSchemeCleanShort,
		Long:              MsgSchemeCleanLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: wallpaperCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			report := a.janitor().DeleteColorschemes(args[0])

			out := cmd.OutOrStdout()
			for _, path := range report.Removed {
				fmt.Fprintf(out, "%s %s\n", a.styles.Indicator(true), a.styles.Render(style.Path, path))
			}
			for _, failure := range report.Failures {
				fmt.Fprintf(out, "%s %s (%s)\n", a.styles.Indicator(false), failure.Backend, failure.Kind)
			}
			fmt.Fprintf(out, MsgSchemeCleanSummary, len(report.Removed), len(report.Missing), len(report.Failures))
			return nil
		},
	}

	cmd.AddCommand(pathCmd, sampleCmd, cleanCmd)
	return cmd
}

func newWallpapersCmd(opts *rootOptions) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:     "wallpapers",
		Aliases: []string{"walls"},
		Short:   MsgWallpapersShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			walls, err := artifacts.ListFiles(a.fs, a.paths.WallpapersDir(), pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(walls) == 0 {
				fmt.Fprintln(out, a.styles.Render(style.Muted, MsgNoWallpapers))
				return nil
			}
			for _, wall := range walls {
				fmt.Fprintln(out, wall)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", MsgFlagPattern)
	return cmd
}

func newBackendsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "backends",
		Short:   MsgBackendsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}

			active := types.Backend(a.settings)
			for _, name := range a.shim.Registry().ListBackends() {
				if name == active {
					name = a.styles.Render(style.Name, name+" *")
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newScriptCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "script <wallpaper> <colorscheme>",
		Short:   MsgScriptShort,
		Long:    MsgScriptLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			if err := a.paths.EnsureLayout(); err != nil {
				return err
			}
			if err := a.scriptWriter().WriteScript(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgScriptWritten, a.paths.InitScriptPath())
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			cfg, err := a.settings.Config()
			if err != nil {
				return err
			}
			out, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			path := a.paths.ConfigFilePath()
			written, err := config.WriteDefault(path)
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, path)
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     MsgConfigSetShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: types.SettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !types.IsSettingKey(args[0]) {
				return fmt.Errorf(MsgErrUnknownKey, args[0])
			}
			a, err := opts.app()
			if err != nil {
				return err
			}
			return config.Set(a.paths.ConfigFilePath(), args[0], args[1])
		},
	}

	cmd.AddCommand(showCmd, initCmd, setCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wpg version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), ManHeader(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "out", ".", MsgFlagManDir)
	return cmd
}

// ManHeader is the header shared by every generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "WPG",
		Section: "1",
		Source:  "wpg " + version.Version,
		Manual:  "wpg manual",
	}
}
