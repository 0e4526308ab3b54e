package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/actions"
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// Instance - один запущенный игровой модуль (зона + драйвер тиков).
//
// Порядок внутри тика зафиксирован:
//  1. планировщик отложенных действий;
//  2. очереди существ в порядке создания сущностей.
//
// Оба порядка стабильны, поэтому при одном сиде прогон детерминирован.
type Instance struct {
	ID   int
	Area *domain.Area

	Surface   nav.Surface
	Detector  *systems.CollisionDetector
	Scheduler *DelayScheduler

	queues map[domain.ObjectID]*actions.Queue
	order  []domain.ObjectID // порядок создания - порядок обхода

	Rng  *rand.Rand // Локальный генератор инстанса
	Seed int64

	CurrentTick int
	ctx         *actions.Context

	// OnTick дергается после каждого тика (рассылка состояния наблюдателям)
	OnTick func(*Instance)
}

func NewInstance(id int, area *domain.Area, surface nav.Surface, scripts systems.ScriptRunner, cfg Config) *Instance {
	rng := rand.New(rand.NewSource(cfg.Seed))
	detector := systems.NewCollisionDetector(cfg.MaxBumps)

	inst := &Instance{
		ID:        id,
		Area:      area,
		Surface:   surface,
		Detector:  detector,
		Scheduler: NewDelayScheduler(),
		queues:    make(map[domain.ObjectID]*actions.Queue),
		Rng:       rng,
		Seed:      cfg.Seed,
	}
	inst.ctx = &actions.Context{
		Area: area,
		Resolver: &systems.MovementResolver{
			Surface:  surface,
			Detector: detector,
			Area:     area,
		},
		Scripts: scripts,
		Rng:     rng,
	}

	// Существа, уже живущие в зоне, получают очереди сразу
	for _, e := range area.Creatures() {
		inst.track(e)
	}
	return inst
}

// AddEntity добавляет сущность в зону инстанса
func (i *Instance) AddEntity(e *domain.Entity) {
	i.Area.AddEntity(e)
	if e.IsCreature() {
		i.track(e)
	}
}

func (i *Instance) track(e *domain.Entity) {
	if _, exists := i.queues[e.ID]; exists {
		return
	}
	i.queues[e.ID] = actions.NewQueue(e)
	i.order = append(i.order, e.ID)
}

// RemoveEntity выводит сущность из инстанса: очередь и отложенные
// записи гасятся без исполнения.
func (i *Instance) RemoveEntity(id domain.ObjectID) {
	i.Scheduler.ClearForEntity(id)
	if q, ok := i.queues[id]; ok {
		q.Clear()
		delete(i.queues, id)
		i.dropFromOrder(id)
	}
	i.Detector.ClearState(id)
	i.Area.RemoveEntity(id)
}

func (i *Instance) dropFromOrder(id domain.ObjectID) {
	for idx, oid := range i.order {
		if oid == id {
			// Сдвиг, не swap: порядок обхода должен остаться стабильным
			copy(i.order[idx:], i.order[idx+1:])
			i.order = i.order[:len(i.order)-1]
			return
		}
	}
}

// Enqueue ставит действие в очередь существа
func (i *Instance) Enqueue(id domain.ObjectID, a actions.Action) bool {
	q, ok := i.queues[id]
	if !ok {
		return false
	}
	return q.Add(a)
}

// Tick - один шаг симуляции на dt секунд
func (i *Instance) Tick(dt float64) {
	i.CurrentTick++

	// 1. Планировщик (до очередей - см. комментарий к DelayScheduler)
	i.Scheduler.Advance(dt, i)

	// 2. Очереди существ в стабильном порядке.
	// Обходим копию: действие может удалить сущность из зоны.
	ids := make([]domain.ObjectID, len(i.order))
	copy(ids, i.order)
	for _, id := range ids {
		ent, ok := i.Area.GetEntity(id)
		if !ok {
			// Сущность уничтожили посреди тика - вычищаем следы
			i.RemoveEntity(id)
			continue
		}
		if !ent.IsAlive() {
			continue
		}
		if q, ok := i.queues[id]; ok {
			q.Update(i.ctx, dt)
		}
	}

	if i.OnTick != nil {
		i.OnTick(i)
	}
}

// Run крутит цикл тиков до закрытия stop
func (i *Instance) Run(cfg Config, stop <-chan struct{}) {
	logger.Log.WithFields(logrus.Fields{
		"instance_id": i.ID,
		"seed":        i.Seed,
		"tick_ms":     cfg.TickDurationMs,
	}).Info("Instance loop started")

	ticker := time.NewTicker(cfg.TickDuration())
	defer ticker.Stop()

	dt := cfg.Dt()
	for {
		select {
		case <-stop:
			logger.Log.WithField("instance_id", i.ID).Info("Instance loop stopped")
			return
		case <-ticker.C:
			i.Tick(dt)
		}
	}
}

// --- Dispatcher (для планировщика) ---

func (i *Instance) QueueFor(id domain.ObjectID) (*actions.Queue, bool) {
	q, ok := i.queues[id]
	return q, ok
}

func (i *Instance) Entity(id domain.ObjectID) (*domain.Entity, bool) {
	return i.Area.GetEntity(id)
}

func (i *Instance) ActionContext() *actions.Context {
	return i.ctx
}
