package input

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mask-arena/event"
)

// Pump reads screen events until ctx ends or the screen is finalized
// Keys go to the queue; resizes call onResize
func Pump(ctx context.Context, screen tcell.Screen, km *KeyMap, queue *event.EventQueue, onResize func(), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			ge, ok := km.Translate(ev)
			if !ok {
				logger.Debug("unbound key", "key", ev.Name())
				continue
			}
			queue.Push(ge)
		case *tcell.EventResize:
			if onResize != nil {
				onResize()
			}
		}
	}
}
