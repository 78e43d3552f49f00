package desktop

import (
	"context"
	"fmt"

	"github.com/bnema/cliptranslate/internal/ports"
	"github.com/gen2brain/beeep"
)

const maxBodyRunes = 240

type notifyFunc func(title, body string) error

type Notifier struct {
	notify notifyFunc
	icon   string
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(icon string) *Notifier {
	n := &Notifier{icon: icon}
	n.notify = func(title, body string) error {
		return beeep.Notify(title, body, n.icon)
	}
	return n
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.notify(shorten(title, maxBodyRunes/4), shorten(body, maxBodyRunes)); err != nil {
		return fmt.Errorf("send desktop notification: %w", err)
	}

	return nil
}

func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
