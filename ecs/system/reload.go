package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
	"github.com/milk9111/zebulew/logging"
)

// ReloadSystem turns the reload intent into a ReloadRequest for the game
// loop.
type ReloadSystem struct {
	log *zap.Logger
}

func NewReloadSystem(log *zap.Logger) *ReloadSystem {
	return &ReloadSystem{log: logging.OrNop(log)}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, intent, ok := ecs.Lookup(w, component.NodePlayer, component.IntentComponent.Kind())
	if !ok || !intent.Reload {
		return
	}
	intent.Reload = false
	if err := RequestReload(w, "reload button"); err != nil {
		s.log.Error("reload request", zap.Error(err))
	}
}

// RequestReload posts a ReloadRequest unless one is already pending.
func RequestReload(w *ecs.World, reason string) error {
	if _, pending := ecs.First(w, component.ReloadRequestComponent.Kind()); pending {
		return nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Reason: reason}); err != nil {
		return fmt.Errorf("request reload (%s): %w", reason, err)
	}
	return nil
}

// PendingReload returns the pending request, if any.
func PendingReload(w *ecs.World) (*component.ReloadRequest, bool) {
	e, ok := ecs.First(w, component.ReloadRequestComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ReloadRequestComponent.Kind())
}
