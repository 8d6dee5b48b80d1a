package emailnotify

import (
	"fmt"

	"github.com/arthur-debert/emailnotify/internal/version"
	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/dispatcher"
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/arthur-debert/emailnotify/pkg/mailer"
	"github.com/arthur-debert/emailnotify/pkg/registry"
	"github.com/arthur-debert/emailnotify/pkg/rules"
	"github.com/spf13/cobra"
)

func planOptions(cfg *config.Config) dispatcher.PlanOptions {
	return dispatcher.PlanOptions{
		From:              cfg.Transport.From,
		Sentinel:          cfg.Options.Sentinel,
		GeneratePlaintext: cfg.Options.GeneratePlaintext,
		Workers:           cfg.Options.Workers,
	}
}

func newSendCmd(g *globals) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "send [--dry-run] -- ARG...",
		Short:   MsgSendShort,
		Long:    MsgSendLong,
		Example: MsgSendExample,
		GroupID: "core",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, g, args, dryRun)
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}

func runSend(cmd *cobra.Command, g *globals, args []string, dryRun bool) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	logging.LogInvocation("send", args)
	logger := logging.GetLogger("cmd.send")
	ctx := cmd.Context()

	s, err := g.open(cmd)
	if err != nil {
		return err
	}

	var sender mailer.Sender
	if !dryRun {
		if err := s.cfg.ValidateTransport(); err != nil {
			return err
		}
		sender, err = mailer.New(ctx, s.cfg.Transport)
		if err != nil {
			return err
		}
	}

	plan, err := dispatcher.BuildPlan(ctx, s.reg, args, planOptions(s.cfg))
	if err != nil {
		return err
	}

	result, dispatchErr := dispatcher.New(sender).Dispatch(ctx, plan, dispatcher.DispatchOptions{DryRun: dryRun})
	if result != nil {
		if err := s.renderer.RenderResult(result); err != nil {
			return err
		}
	}
	if dispatchErr != nil {
		if result == nil {
			return dispatchErr
		}
		return errors.Wrapf(dispatchErr, errors.ErrSend, MsgErrSendFailed, result.Failed, len(plan.Messages))
	}

	logger.Info().
		Str("run", plan.RunID).
		Int("sent", result.Sent).
		Bool("dryRun", dryRun).
		Msg("Send command finished")
	return nil
}

func newMatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "match ARG...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		GroupID: "core",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.LogInvocation("match", args)

			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			grouping, err := rules.GroupRecipientsParallel(cmd.Context(), s.reg.Users(), args, s.cfg.Options.Workers)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(grouping)
		},
	}
}

func newRenderCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "render TEMPLATE_ID [ARG...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			preview, err := dispatcher.Render(s.reg, args[0], args[1:], planOptions(s.cfg))
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(preview)
		},
	}
}

func newCheckCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			summary := registry.Summarize(s.reg, s.report)
			if err := s.renderer.RenderResult(summary); err != nil {
				return err
			}
			if summary.Errors > 0 {
				return errors.Newf(errors.ErrConfigValid, MsgConfigHasErrors, summary.Errors).
					WithDetail("path", s.paths.ConfigFile())
			}
			return nil
		},
	}
}

func newInitCmd(g *globals) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [PATH]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			path := defaultInitPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteSample(path, force); err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgSampleWritten, path))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func newVersionCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}
