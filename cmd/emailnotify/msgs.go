package emailnotify

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Send condition-driven email notifications"
	MsgSendShort    = "Match arguments against users and send the notifications"
	MsgCheckShort   = "Validate the configuration and list problems"
	MsgMatchShort   = "Show who would be notified for the given arguments"
	MsgRenderShort  = "Fill a template with arguments and print it"
	MsgInitShort    = "Write a sample configuration file"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgSampleWritten   = "Wrote sample configuration to [path]%s[/path]"
	MsgVersionFormat   = "emailnotify version %s\n  commit: %s\n  built:  %s"
	MsgConfigHasErrors = "configuration has %d invalid entries"

	// Error messages
	MsgErrInitPaths  = "failed to resolve configuration path: %w"
	MsgErrNoCommand  = "no command specified"
	MsgErrSendFailed = "%d of %d message(s) could not be sent"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: $EMAILNOTIFY_CONFIG or the XDG config dir)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagDryRun  = "Show what would be sent without sending"
	MsgFlagForce   = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/send-long.txt
	msgSendLongRaw string
	MsgSendLong    = strings.TrimSpace(msgSendLongRaw)

	//go:embed msgs/send-example.txt
	msgSendExampleRaw string
	MsgSendExample    = strings.TrimRight(msgSendExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
