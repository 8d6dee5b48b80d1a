package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/emailnotify/cmd/emailnotify"
	"github.com/arthur-debert/emailnotify/pkg/style"
	"github.com/arthur-debert/emailnotify/pkg/ui"
	"github.com/arthur-debert/emailnotify/pkg/ui/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := emailnotify.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		line := text.ErrorLine(err)
		if ui.DetectFormat(os.Stderr) == ui.FormatTerminal {
			line = style.ErrorStyle.Render(line)
		}
		fmt.Fprintln(os.Stderr, line)
		stop()
		os.Exit(1)
	}
}
