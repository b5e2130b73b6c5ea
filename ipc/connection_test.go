package ipc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLoop(t *testing.T) {
	input := initBlock + "2\n1 0 0 0 1 0\n2 2 1 1 3 0\n1\n" + "1\n1 1 0 0 1 10\n1\n"
	var out bytes.Buffer
	c := NewConnection(strings.NewReader(input), &out)

	var gotInit InitMessage
	var turns []TurnMessage
	c.HandleInit(func(msg InitMessage) error {
		gotInit = msg
		return nil
	})
	c.HandleTurn(func(msg TurnMessage) ([]*Order, error) {
		turns = append(turns, msg)
		o := NewOrder(1)
		o.Add(MoveCommand{X: len(turns), Y: 0})
		o.Add(HunkerCommand{})
		return []*Order{o}, nil
	})

	require.NoError(t, c.ReadLoop(context.Background()))
	assert.Equal(t, 3, gotInit.Width)
	require.Len(t, turns, 2)
	assert.Len(t, turns[1].Units, 1)
	assert.Equal(t, "1;MOVE 1 0;HUNKER_DOWN\n1;MOVE 2 0;HUNKER_DOWN\n", out.String())
}

func TestReadLoopSkipsFailedTurns(t *testing.T) {
	input := initBlock + "0\n0\n" + "0\n0\n"
	var out bytes.Buffer
	c := NewConnection(strings.NewReader(input), &out)
	c.HandleInit(func(InitMessage) error { return nil })
	n := 0
	c.HandleTurn(func(TurnMessage) ([]*Order, error) {
		n++
		if n == 1 {
			return nil, errors.New("boom")
		}
		return []*Order{NewOrder(9)}, nil
	})

	require.NoError(t, c.ReadLoop(context.Background()))
	assert.Equal(t, 2, n)
	assert.Equal(t, "9\n", out.String())
}

func TestReadLoopErrors(t *testing.T) {
	c := NewConnection(strings.NewReader(initBlock), &bytes.Buffer{})
	assert.Error(t, c.ReadLoop(context.Background()), "handlers missing")

	c = NewConnection(strings.NewReader(initBlock+"1\n1 0"), &bytes.Buffer{})
	c.HandleInit(func(InitMessage) error { return nil })
	c.HandleTurn(func(TurnMessage) ([]*Order, error) { return nil, nil })
	assert.Error(t, c.ReadLoop(context.Background()), "truncated turn")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c = NewConnection(strings.NewReader(initBlock), &bytes.Buffer{})
	c.HandleInit(func(InitMessage) error { return nil })
	c.HandleTurn(func(TurnMessage) ([]*Order, error) { return nil, nil })
	assert.ErrorIs(t, c.ReadLoop(ctx), context.Canceled)
}
