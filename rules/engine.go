package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/nstehr/soakbot/ipc"
)

// Engine resolves one unit's combat action from compiled rules. Each
// category is ticked as a selector over its rules in priority order: an
// exclusive rule that fires succeeds and stops the selector, anything else
// fails through to the next rule.
type Engine struct {
	rules      []*Rule
	categories []string // ordered by their highest priority rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	e := &Engine{rules: compiled}
	seen := make(map[string]bool)
	for _, r := range compiled {
		if !seen[r.Category] {
			seen[r.Category] = true
			e.categories = append(e.categories, r.Category)
		}
	}
	return e, nil
}

// Evaluate runs every category tree against env, appending commands to
// order. It returns the names of the rules that fired.
func (e *Engine) Evaluate(env RuleEnv, order *ipc.Order) ([]string, error) {
	var fired []string
	for _, cat := range e.categories {
		var leaves []bt.Node
		for _, r := range e.rules {
			if r.Category == cat {
				leaves = append(leaves, e.leaf(r, env, order, &fired))
			}
		}
		if _, err := bt.New(bt.Selector, leaves...).Tick(); err != nil {
			return fired, fmt.Errorf("category %s: %w", cat, err)
		}
	}
	return fired, nil
}

func (e *Engine) leaf(r *Rule, env RuleEnv, order *ipc.Order, fired *[]string) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			return bt.Failure, nil
		}
		if match, ok := result.(bool); !ok || !match {
			return bt.Failure, nil
		}

		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "unit", order.AgentID)
		if err := r.Action(env, order); err != nil {
			slog.Error("rule action error", "rule", r.Name, "error", err)
			return bt.Failure, nil
		}
		*fired = append(*fired, r.Name)

		if r.Exclusive {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("rule %q has no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
