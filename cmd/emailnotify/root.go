package emailnotify

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/emailnotify/internal/version"
	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/arthur-debert/emailnotify/pkg/paths"
	"github.com/arthur-debert/emailnotify/pkg/registry"
	"github.com/arthur-debert/emailnotify/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbosity  int
	configPath string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "emailnotify [ARG...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgSendExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Bare arguments are a send, no arguments show help.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, g, args, false)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&g.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSendCmd(g))
	rootCmd.AddCommand(newMatchCmd(g))
	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newVersionCmd(g))

	addHelpTopics(rootCmd)

	return rootCmd
}

// session is a loaded and built configuration ready for a command.
type session struct {
	paths    *paths.Paths
	cfg      *config.Config
	reg      *registry.Registry
	report   *registry.Report
	renderer ui.Renderer
}

func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// open resolves, loads and builds the configuration. Build issues are
// logged, never fatal.
func (g *globals) open(cmd *cobra.Command) (*session, error) {
	r, err := g.renderer(cmd)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(g.configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(p.ConfigFile())
	if err != nil {
		if p.UsedDefault() {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"no configuration found, run 'emailnotify init' to create %s", p.ConfigFile())
		}
		return nil, err
	}
	if err := cfg.ValidateOptions(); err != nil {
		return nil, err
	}

	reg, report := registry.Build(cfg, registry.BuildOptions{
		BaseDir: p.TemplateDir(cfg.Options.TemplateDir),
	})
	report.Log(logging.GetLogger("config"))

	return &session{paths: p, cfg: cfg, reg: reg, report: report, renderer: r}, nil
}

func defaultInitPath() string {
	return filepath.Join(paths.ConfigDir(), paths.ConfigFileNames[0])
}
