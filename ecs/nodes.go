package ecs

import (
	"fmt"

	"github.com/milk9111/zebulew/ecs/component"
)

// SetNode records e under name in the world's scene table.
func SetNode(w *World, name string, e Entity) error {
	tableEnt, ok := First(w, component.SceneNodesComponent.Kind())
	if !ok {
		tableEnt = CreateEntity(w)
		if err := Add(w, tableEnt, component.SceneNodesComponent.Kind(), &component.SceneNodes{}); err != nil {
			return fmt.Errorf("scene node %q: %w", name, err)
		}
	}
	table, _ := Get(w, tableEnt, component.SceneNodesComponent.Kind())
	if table.ByName == nil {
		table.ByName = make(map[string]uint64)
	}
	table.ByName[name] = uint64(e)
	return nil
}

// Node looks up a scene node by name. It only succeeds when the node is alive.
func Node(w *World, name string) (Entity, bool) {
	tableEnt, ok := First(w, component.SceneNodesComponent.Kind())
	if !ok {
		return 0, false
	}
	table, ok := Get(w, tableEnt, component.SceneNodesComponent.Kind())
	if !ok || table.ByName == nil {
		return 0, false
	}
	raw, ok := table.ByName[name]
	if !ok {
		return 0, false
	}
	e := Entity(raw)
	if !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

// Lookup finds a scene node by name and returns it only if it carries kind.
func Lookup[T any](w *World, name string, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := Node(w, name)
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, kind)
	if !ok {
		return 0, nil, false
	}
	return e, v, true
}
