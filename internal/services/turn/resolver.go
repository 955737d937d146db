package turn

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/sugoroku/internal/model"
)

// Resolver decides whose turn comes next
type Resolver struct {
	logger *slog.Logger
}

// New creates a new Resolver
func New(logger *slog.Logger) *Resolver {
	return &Resolver{
		logger: logger.With(slog.String("component", "turn-resolver")),
	}
}

// NextPlayer scans the roster cyclically, starting after current, for at most
// one full lap. Players who already arrived are passed over. Players with
// pending skips lose one skip and are passed over. The first other player is
// returned. ok is false when nobody is eligible in this lap.
func (r *Resolver) NextPlayer(current string, order []string, statuses map[string]*model.PlayerStatus) (string, bool, error) {
	start := -1
	for i, name := range order {
		if name == current {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false, fmt.Errorf("%w: %s is not in the turn order", model.ErrPlayerNotFound, current)
	}

	for step := 1; step <= len(order); step++ {
		candidate := order[(start+step)%len(order)]
		status, err := model.LookupStatus(statuses, candidate)
		if err != nil {
			return "", false, err
		}

		if status.Arrived() {
			continue
		}
		if status.PendingSkips() > 0 {
			status.SubSkips(1)
			r.logger.Debug("turn skipped",
				slog.String("player", candidate),
				slog.Int("remaining", int(status.PendingSkips())),
			)
			continue
		}
		return candidate, true, nil
	}

	return "", false, nil
}

// Interface for dependency injection
type ResolverInterface interface {
	NextPlayer(current string, order []string, statuses map[string]*model.PlayerStatus) (string, bool, error)
}

var _ ResolverInterface = (*Resolver)(nil)
