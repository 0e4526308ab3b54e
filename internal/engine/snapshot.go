package engine

import (
	"github.com/th3w1zard1/Andastra-sub005/pkg/api"
)

// Snapshot собирает кадр состояния зоны для наблюдателей.
// Порядок сущностей - стабильный порядок создания.
func (i *Instance) Snapshot() api.ServerResponse {
	resp := api.ServerResponse{
		Type: "SNAPSHOT",
		Tick: i.CurrentTick,
		Area: i.Area.Tag,
	}
	for _, e := range i.Area.Entities() {
		state := api.EntityState{
			ID:   e.ID.String(),
			Type: string(e.Type),
			Name: e.Name,
		}
		if e.Transform != nil {
			state.X = e.Transform.Position.X
			state.Y = e.Transform.Position.Y
			state.Z = e.Transform.Position.Z
			state.Facing = e.Transform.Facing
		}
		if e.Stats != nil {
			state.HP = e.Stats.HP
			state.MaxHP = e.Stats.MaxHP
			state.IsDead = e.Stats.IsDead
		}
		resp.Entities = append(resp.Entities, state)
	}
	return resp
}
