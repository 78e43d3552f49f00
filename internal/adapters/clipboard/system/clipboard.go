package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bnema/cliptranslate/internal/ports"
)

var ErrUnavailable = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

type Clipboard struct {
	read        func() (string, error)
	write       func(string) error
	unsupported bool
}

var _ ports.Clipboard = (*Clipboard)(nil)

func NewClipboard() *Clipboard {
	return &Clipboard{
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// ReadText returns the clipboard text, or an empty string when the clipboard
// holds nothing textual.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.unsupported {
		return "", ErrUnavailable
	}

	text, err := c.read()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}

	return text, nil
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return ErrUnavailable
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}

	return nil
}
