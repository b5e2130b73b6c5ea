package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxUnits guards against a corrupted count swallowing the whole stream.
const maxUnits = 1 << 10

// maxCells bounds the announced map size. The path and cover tables grow
// with its square.
const maxCells = 1 << 10

// Reader decodes the whitespace separated referee stream.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// nextInt reads one integer token. A clean end of stream is returned as
// io.EOF so callers can tell it apart from a truncated message.
func (r *Reader) nextInt(field string) (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("read %s: %w", field, err)
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

// ints reads len(dst) integers into the pointed-to fields.
func (r *Reader) ints(names []string, dst ...*int) error {
	for i, p := range dst {
		v, err := r.nextInt(names[i])
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func count(n int, field string, limit int) error {
	if n < 0 || n > limit {
		return fmt.Errorf("invalid %s: %d", field, n)
	}
	return nil
}

var (
	profileFields = []string{"agent id", "player", "shoot cooldown", "optimal range", "soaking power", "splash bombs"}
	cellFields    = []string{"cell x", "cell y", "tile type"}
	stateFields   = []string{"agent id", "x", "y", "cooldown", "splash bombs", "wetness"}
)

// ReadInit decodes the game-start block: own player id, unit profiles, map
// size and one "x y type" triple per cell.
func (r *Reader) ReadInit() (InitMessage, error) {
	var msg InitMessage
	var n int
	if err := r.ints([]string{"player id", "agent count"}, &msg.PlayerID, &n); err != nil {
		return InitMessage{}, err
	}
	if err := count(n, "agent count", maxUnits); err != nil {
		return InitMessage{}, err
	}
	msg.Units = make([]UnitProfile, n)
	for i := range msg.Units {
		p := &msg.Units[i]
		if err := r.ints(profileFields, &p.ID, &p.Player, &p.ShootCooldown, &p.OptimalRange, &p.SoakingPower, &p.SplashBombs); err != nil {
			return InitMessage{}, truncated(err, "agent profile")
		}
	}

	if err := r.ints([]string{"width", "height"}, &msg.Width, &msg.Height); err != nil {
		return InitMessage{}, truncated(err, "map size")
	}
	if msg.Width <= 0 || msg.Height <= 0 || msg.Width*msg.Height > maxCells {
		return InitMessage{}, fmt.Errorf("invalid map size %dx%d", msg.Width, msg.Height)
	}
	msg.Terrain = make([]int, msg.Width*msg.Height)
	for range msg.Terrain {
		var x, y, tile int
		if err := r.ints(cellFields, &x, &y, &tile); err != nil {
			return InitMessage{}, truncated(err, "map cell")
		}
		if x < 0 || x >= msg.Width || y < 0 || y >= msg.Height {
			return InitMessage{}, fmt.Errorf("cell (%d,%d) outside %dx%d map", x, y, msg.Width, msg.Height)
		}
		msg.Terrain[y*msg.Width+x] = tile
	}
	return msg, nil
}

// ReadTurn decodes one turn. io.EOF before the first token means the game
// is over.
func (r *Reader) ReadTurn() (TurnMessage, error) {
	var msg TurnMessage
	n, err := r.nextInt("agent count")
	if err != nil {
		return TurnMessage{}, err
	}
	if err := count(n, "agent count", maxUnits); err != nil {
		return TurnMessage{}, err
	}
	msg.Units = make([]UnitState, n)
	for i := range msg.Units {
		s := &msg.Units[i]
		if err := r.ints(stateFields, &s.ID, &s.X, &s.Y, &s.Cooldown, &s.Bombs, &s.Wetness); err != nil {
			return TurnMessage{}, truncated(err, "agent state")
		}
	}
	owned, err := r.nextInt("own agent count")
	if err != nil {
		return TurnMessage{}, truncated(err, "own agent count")
	}
	if err := count(owned, "own agent count", n); err != nil {
		return TurnMessage{}, err
	}
	msg.OwnedCount = owned
	return msg, nil
}

// truncated turns an end of stream in the middle of a message into an error.
func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", what, io.ErrUnexpectedEOF)
	}
	return err
}
