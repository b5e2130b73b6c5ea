package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nstehr/soakbot/combat"
	"github.com/nstehr/soakbot/ipc"
)

var errNoTarget = errors.New("no target")

// ActionThrow bombs the chosen landing cell and soaks every unit in the
// footprint.
func ActionThrow(env RuleEnv, order *ipc.Order) error {
	if env.Bomb == nil || env.Bomb.Target == nil {
		return fmt.Errorf("throw: %w", errNoTarget)
	}
	t := env.Bomb.Target
	order.Add(ipc.ThrowCommand{X: t.X, Y: t.Y})
	env.Unit.Bombs--
	for _, u := range env.Bomb.Hit {
		if u.Soak(combat.SplashDamage) {
			slog.Debug("unit expected soaked out", "unit", u.ID, "by", env.Unit.ID, "bomb", t.String())
		}
	}
	return nil
}

// ActionShoot fires at the selected target and adds the predicted damage,
// truncated, to its wetness.
func ActionShoot(env RuleEnv, order *ipc.Order) error {
	if env.Shot == nil || env.Shot.Target == nil {
		return fmt.Errorf("shoot: %w", errNoTarget)
	}
	target := env.Shot.Target
	order.Add(ipc.ShootCommand{TargetID: target.ID})
	if target.Soak(int(env.ShootDamage())) {
		slog.Debug("unit expected soaked out", "unit", target.ID, "by", env.Unit.ID)
	}
	return nil
}

func ActionHunker(env RuleEnv, order *ipc.Order) error {
	order.Add(ipc.HunkerCommand{})
	return nil
}

// ActionMessage labels the unit with the cell it is moving to.
func ActionMessage(env RuleEnv, order *ipc.Order) error {
	order.Add(ipc.MessageCommand{Text: "Moving to: " + env.Dest.String()})
	return nil
}
