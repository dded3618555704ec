package service

import (
	"context"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
)

// Notifier dispatches outbound emails. Satisfied by *notification.Dispatcher.
type Notifier interface {
	Send(ctx context.Context, req notification.Request) (notification.Outcome, error)
	SendMessage(ctx context.Context, to string, msg notification.Message) notification.Outcome
}
