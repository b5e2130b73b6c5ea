package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// InitHandler consumes the game-start block.
type InitHandler func(msg InitMessage) error

// TurnHandler turns one feed into one order per own unit.
type TurnHandler func(msg TurnMessage) ([]*Order, error)

// Connection drives one game session over a line oriented stream pair.
type Connection struct {
	reader *Reader
	w      *bufio.Writer
	onInit InitHandler
	onTurn TurnHandler
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		reader: NewReader(r),
		w:      bufio.NewWriter(w),
	}
}

func (c *Connection) HandleInit(h InitHandler) { c.onInit = h }
func (c *Connection) HandleTurn(h TurnHandler) { c.onTurn = h }

// WriteOrders writes one line per order and flushes.
func (c *Connection) WriteOrders(orders []*Order) error {
	for _, o := range orders {
		if _, err := fmt.Fprintln(c.w, o.String()); err != nil {
			return fmt.Errorf("write order: %w", err)
		}
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("flush orders: %w", err)
	}
	return nil
}

// ReadLoop reads the init block, then answers turns until the stream ends
// or ctx is done. A clean end of stream returns nil.
func (c *Connection) ReadLoop(ctx context.Context) error {
	if c.onInit == nil || c.onTurn == nil {
		return errors.New("connection handlers not registered")
	}

	start, err := c.reader.ReadInit()
	if err != nil {
		return fmt.Errorf("read init: %w", err)
	}
	if err := c.onInit(start); err != nil {
		return fmt.Errorf("handle init: %w", err)
	}

	for turn := 0; ; turn++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := c.reader.ReadTurn()
		if errors.Is(err, io.EOF) {
			slog.Info("input closed", "turns", turn)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read turn %d: %w", turn, err)
		}

		orders, err := c.onTurn(msg)
		if err != nil {
			slog.Error("turn handler error", "turn", turn, "error", err)
			continue
		}
		if err := c.WriteOrders(orders); err != nil {
			return err
		}
	}
}
