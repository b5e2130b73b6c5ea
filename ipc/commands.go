package ipc

import (
	"fmt"
	"strings"
)

// Command keywords understood by the referee.
const (
	TypeMove    = "MOVE"
	TypeShoot   = "SHOOT"
	TypeThrow   = "THROW"
	TypeHunker  = "HUNKER_DOWN"
	TypeMessage = "MESSAGE"
)

// Command is one action of an order line.
type Command interface {
	Type() string
	String() string
}

type MoveCommand struct {
	X int
	Y int
}

func (MoveCommand) Type() string     { return TypeMove }
func (c MoveCommand) String() string { return fmt.Sprintf("%s %d %d", TypeMove, c.X, c.Y) }

type ShootCommand struct {
	TargetID int
}

func (ShootCommand) Type() string     { return TypeShoot }
func (c ShootCommand) String() string { return fmt.Sprintf("%s %d", TypeShoot, c.TargetID) }

type ThrowCommand struct {
	X int
	Y int
}

func (ThrowCommand) Type() string     { return TypeThrow }
func (c ThrowCommand) String() string { return fmt.Sprintf("%s %d %d", TypeThrow, c.X, c.Y) }

type HunkerCommand struct{}

func (HunkerCommand) Type() string   { return TypeHunker }
func (HunkerCommand) String() string { return TypeHunker }

// MessageCommand shows text above the unit in the replay viewer.
type MessageCommand struct {
	Text string
}

func (MessageCommand) Type() string { return TypeMessage }

func (c MessageCommand) String() string {
	text := strings.Map(func(r rune) rune {
		if r == ';' || r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, c.Text)
	return TypeMessage + " " + strings.TrimSpace(text)
}

// Order is the full output line for one unit.
type Order struct {
	AgentID  int
	Commands []Command
}

func NewOrder(agentID int) *Order {
	return &Order{AgentID: agentID}
}

func (o *Order) Add(c Command) {
	o.Commands = append(o.Commands, c)
}

// Has reports whether a command of the given type was already added.
func (o *Order) Has(cmdType string) bool {
	for _, c := range o.Commands {
		if c.Type() == cmdType {
			return true
		}
	}
	return false
}

// String renders "id;CMD;CMD".
func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", o.AgentID)
	for _, c := range o.Commands {
		b.WriteByte(';')
		b.WriteString(c.String())
	}
	return b.String()
}
