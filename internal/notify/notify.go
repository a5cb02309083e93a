// Package notify sends native desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"xtime/internal/domain"
)

// AppName is used as the title when a caller passes an empty one.
const AppName = "XTime"

// SendFunc delivers a notification to the OS.
type SendFunc func(title, body string) error

// Notifier displays notifications through the host notification service.
type Notifier interface {
	Notify(title, body string) error
}

// Dispatcher is the default Notifier. Delivery errors are logged and
// returned to the caller wrapped in domain.ErrBackend.
type Dispatcher struct {
	send SendFunc
	log  zerolog.Logger
}

// NewDispatcher creates a dispatcher backed by beeep.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return NewDispatcherWith(beeepSend, log)
}

// NewDispatcherWith creates a dispatcher using send for delivery.
func NewDispatcherWith(send SendFunc, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		send: send,
		log:  log.With().Str("component", "notify").Logger(),
	}
}

func beeepSend(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Notify shows a notification.
func (d *Dispatcher) Notify(title, body string) error {
	if title == "" {
		title = AppName
	}
	if err := d.send(title, body); err != nil {
		d.log.Error().Err(err).Str("title", title).Msg("notification failed")
		return fmt.Errorf("notify: %w: %v", domain.ErrBackend, err)
	}
	d.log.Debug().Str("title", title).Msg("notification sent")
	return nil
}
