package rules

import (
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/soakbot/ipc"
)

// ActionFunc appends commands to the unit's order when a rule's condition
// holds, and applies the predicted outcome to the working snapshot.
type ActionFunc func(env RuleEnv, order *ipc.Order) error

// Rule is a condition → action pair. The engine evaluates rules by priority;
// an exclusive rule that fires stops lower rules of its category.
type Rule struct {
	Name         string
	Priority     int    // higher = evaluated first
	Category     string // grouping for exclusive semantics
	Exclusive    bool
	ConditionSrc string // expr source
	program      *vm.Program
	Action       ActionFunc
}
