package config

import (
	"strings"

	"github.com/arthur-debert/emailnotify/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateTransport checks the settings needed to actually send mail.
// Only the block for the selected transport kind is checked, so a dry run
// works without any transport configured.
func (c *Config) ValidateTransport() error {
	t := c.Transport

	if err := validate.StructExcept(t, "SMTP", "SES"); err != nil {
		return fieldError("transport", err)
	}

	switch t.Kind {
	case "ses":
		if err := validate.Struct(t.SES); err != nil {
			return fieldError("transport.ses", err)
		}
	default:
		if err := validate.Struct(t.SMTP); err != nil {
			return fieldError("transport.smtp", err)
		}
	}
	return nil
}

// ValidateOptions checks the options section.
func (c *Config) ValidateOptions() error {
	if err := validate.Struct(c.Options); err != nil {
		return fieldError("options", err)
	}
	return nil
}

func fieldError(section string, err error) error {
	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
		}
	}
	msg := "invalid " + section + " settings"
	if len(fields) > 0 {
		msg += ": " + strings.Join(fields, ", ")
	}
	return errors.Wrap(err, errors.ErrConfigValid, msg).
		WithDetail("section", section).
		WithDetail("fields", fields)
}
