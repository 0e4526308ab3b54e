package engine

import (
	"fmt"
	"math/rand"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
	"github.com/th3w1zard1/Andastra-sub005/internal/scripting"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// buildDemoArea создает демонстрационную зону: арена 40x40 клеток,
// несколько существ, предметы и один рычаг.
func buildDemoArea(rng *rand.Rand) (*domain.Area, nav.Surface) {
	area := domain.NewArea("demo_arena")
	surface := nav.NewGridSurface(40, 40, 1.0)

	// 1. Внутренняя стенка, чтобы обходные пути были видны глазами
	for row := 10; row < 20; row++ {
		surface.SetWall(20, row)
	}

	// 2. Герой
	hero := &domain.Entity{
		ID:   "hero_1",
		Type: domain.EntityTypeCreature,
		Tag:  "hero",
		Name: "Герой",
		Transform: &domain.TransformComponent{
			Position: domain.Vector3{X: 5.5, Y: 5.5},
		},
		Stats: &domain.StatsComponent{
			HP: 30, MaxHP: 30,
			WalkSpeed: systems.DefaultWalkSpeed,
			RunSpeed:  systems.DefaultRunSpeed,
		},
		Appearance: &domain.AppearanceComponent{HitRadius: systems.DefaultHitRadius},
		Equipment:  &domain.EquipmentComponent{},
	}
	area.AddEntity(hero)

	// 3. Меч героя (лежит в зоне как сущность, надевается действием)
	sword := &domain.Entity{
		ID:   "item_sword_1",
		Type: domain.EntityTypeItem,
		Tag:  "iron_sword",
		Name: "Железный меч",
		Item: &domain.ItemComponent{Slot: domain.SlotRightWeapon, Damage: 3},
	}
	area.AddEntity(sword)

	// 4. Противники со случайным разбросом позиций
	for i := 0; i < 3; i++ {
		x := 25.0 + rng.Float64()*10.0
		y := 25.0 + rng.Float64()*10.0
		enemy := &domain.Entity{
			ID:   domain.ObjectID(fmt.Sprintf("raider_%d", i+1)),
			Type: domain.EntityTypeCreature,
			Tag:  "raider",
			Name: fmt.Sprintf("Рейдер %d", i+1),
			Transform: &domain.TransformComponent{
				Position: domain.Vector3{X: x, Y: y},
			},
			Stats: &domain.StatsComponent{
				HP: 10, MaxHP: 10,
				WalkSpeed: 2.0,
				RunSpeed:  4.0,
			},
			Appearance: &domain.AppearanceComponent{HitRadius: systems.DefaultHitRadius},
			Scripts: &domain.ScriptsComponent{
				Handlers: map[domain.ScriptEvent]string{
					domain.EventOnDamaged: "raider_on_damaged",
					domain.EventOnDeath:   "raider_on_death",
				},
			},
		}
		area.AddEntity(enemy)
	}

	// 5. Рычаг у стены
	lever := &domain.Entity{
		ID:   "lever_1",
		Type: domain.EntityTypePlaceable,
		Tag:  "arena_lever",
		Name: "Рычаг",
		Transform: &domain.TransformComponent{
			Position: domain.Vector3{X: 18.5, Y: 15.5},
		},
		Appearance: &domain.AppearanceComponent{HitRadius: 0.4},
		Scripts: &domain.ScriptsComponent{
			Handlers: map[domain.ScriptEvent]string{
				domain.EventOnUsed: "lever_on_used",
			},
		},
	}
	area.AddEntity(lever)

	return area, surface
}

// registerDemoScripts наполняет исполнитель обработчиками демо-зоны
func registerDemoScripts(exec *scripting.Executor) error {
	demo := map[string]string{
		"raider_on_damaged": `
fmt := import("fmt")
fmt.println("[script] ", __self, " damaged by ", __triggerer)
`,
		"raider_on_death": `
fmt := import("fmt")
fmt.println("[script] ", __self, " died, killer: ", __triggerer)
`,
		"lever_on_used": `
fmt := import("fmt")
fmt.println("[script] lever ", __self, " pulled by ", __triggerer)
`,
	}
	for name, src := range demo {
		if err := exec.Register(name, src); err != nil {
			return err
		}
	}
	return nil
}

// NewDemoInstance собирает готовый к запуску демо-инстанс
func NewDemoInstance(cfg Config) (*Instance, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	area, surface := buildDemoArea(rng)

	exec := scripting.NewExecutor()
	if err := registerDemoScripts(exec); err != nil {
		return nil, err
	}

	inst := NewInstance(1, area, surface, exec, cfg)
	logger.Log.WithField("area", area.Tag).Info("Demo module assembled")
	return inst, nil
}
