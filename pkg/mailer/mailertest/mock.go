// Package mailertest provides a testify mock of mailer.Sender.
package mailertest

import (
	"context"

	"github.com/arthur-debert/emailnotify/pkg/mailer"
	"github.com/stretchr/testify/mock"
)

// MockSender implements mailer.Sender for testing
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockSender) Name() string {
	return "mock"
}
