package mailer

import (
	"context"

	"github.com/arthur-debert/emailnotify/pkg/config"
	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/arthur-debert/emailnotify/pkg/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends through AWS SES.
type SESSender struct {
	client           sesAPI
	configurationSet string
	listRecipients   bool
}

// NewSES loads AWS configuration for cfg.SES. Static keys are used when
// given, the default credential chain otherwise.
func NewSES(ctx context.Context, cfg config.Transport) (*SESSender, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SES.Region),
	}
	if cfg.SES.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTransport, "cannot load AWS configuration").
			WithDetail("region", cfg.SES.Region)
	}

	return &SESSender{
		client:           sesv2.NewFromConfig(awsCfg),
		configurationSet: cfg.SES.ConfigurationSet,
		listRecipients:   cfg.Recipients == RecipientsTo,
	}, nil
}

// Name implements Sender.
func (s *SESSender) Name() string { return KindSES }

// Send implements Sender.
func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if err := checkMessage(msg); err != nil {
		return err
	}

	input := buildSESInput(msg, s.configurationSet, s.listRecipients)
	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSend, "ses delivery of %s failed", msg.ItemID).
			WithDetail("message", msg.ID)
	}

	logger := logging.GetLogger("mailer.ses")
	logger.Debug().
		Str("message", msg.ID).
		Str("ses_id", aws.ToString(out.MessageId)).
		Msg("Message accepted")
	return nil
}

func buildSESInput(msg Message, configurationSet string, listRecipients bool) *sesv2.SendEmailInput {
	body := &types.Body{
		Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination:      destination(msg.To, listRecipients),
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("item"), Value: aws.String(msg.ItemID)},
		},
	}
	if msg.RunID != "" {
		input.EmailTags = append(input.EmailTags, types.MessageTag{Name: aws.String("run"), Value: aws.String(msg.RunID)})
	}
	if configurationSet != "" {
		input.ConfigurationSetName = aws.String(configurationSet)
	}
	return input
}

func destination(to []string, listRecipients bool) *types.Destination {
	if listRecipients {
		return &types.Destination{ToAddresses: to}
	}
	return &types.Destination{BccAddresses: to}
}
