package emailnotify

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/emailnotify/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*
var topicFiles embed.FS

// addHelpTopics installs "help <topic>" for the embedded topics.
func addHelpTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if helpStyled() {
		renderer = topics.NewGlamourRenderer()
	}

	if _, err := topics.Initialize(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
