package engine

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/actions"
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// delayedEntry - одна отложенная запись планировщика.
// Ровно один исход: Dispatched или Discarded, перепланирования нет.
type delayedEntry struct {
	Due    float64         // Абсолютное время срабатывания
	Seq    uint64          // Порядок постановки (стабильность FIFO при равных Due)
	Action actions.Action  // Что исполнить
	Target domain.ObjectID // На ком исполнить
	Index  int             // Индекс в куче (нужен для heap.Fix)
}

// delayHeap реализует heap.Interface поверх отложенных записей
type delayHeap []*delayedEntry

func (h delayHeap) Len() int { return len(h) }

func (h delayHeap) Less(i, j int) bool {
	// MinHeap по времени; при равном времени - порядок постановки
	if h[i].Due != h[j].Due {
		return h[i].Due < h[j].Due
	}
	return h[i].Seq < h[j].Seq
}

func (h delayHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *delayHeap) Push(x interface{}) {
	n := len(*h)
	entry := x.(*delayedEntry)
	entry.Index = n
	*h = append(*h, entry)
}

func (h *delayHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	entry.Index = -1
	*h = old[0 : n-1]
	return entry
}

// Dispatcher - то, что умеет принять сработавшее действие.
// Реализуется драйвером тиков (Instance).
type Dispatcher interface {
	QueueFor(id domain.ObjectID) (*actions.Queue, bool)
	Entity(id domain.ObjectID) (*domain.Entity, bool)
	ActionContext() *actions.Context
}

// DelayScheduler - очередь отложенных действий, упорядоченная по
// времени срабатывания. Продвигается ровно один раз за тик,
// ДО обхода очередей сущностей (зафиксированный порядок: действие,
// сработавшее в пустую очередь, начнет исполняться в тот же тик).
type DelayScheduler struct {
	now     float64
	seq     uint64
	entries delayHeap
}

func NewDelayScheduler() *DelayScheduler {
	s := &DelayScheduler{}
	heap.Init(&s.entries)
	return s
}

// Schedule откладывает действие на delaySeconds от текущего момента.
// Вызывающего не блокирует.
func (s *DelayScheduler) Schedule(delaySeconds float64, a actions.Action, target domain.ObjectID) {
	if a == nil {
		return
	}
	if delaySeconds < 0 {
		delaySeconds = 0
	}
	s.seq++
	heap.Push(&s.entries, &delayedEntry{
		Due:    s.now + delaySeconds,
		Seq:    s.seq,
		Action: a,
		Target: target,
	})
}

// Advance сдвигает время на dt и исполняет все созревшие записи
// в порядке возрастания Due (при равенстве - в порядке постановки).
func (s *DelayScheduler) Advance(dt float64, d Dispatcher) {
	s.now += dt
	for s.entries.Len() > 0 && s.entries[0].Due <= s.now {
		entry := heap.Pop(&s.entries).(*delayedEntry)
		s.dispatch(entry, d)
	}
}

func (s *DelayScheduler) dispatch(entry *delayedEntry, d Dispatcher) {
	ent, ok := d.Entity(entry.Target)
	if !ok {
		// Цель умерла раньше срока: запись гасится без исполнения
		entry.Action.Dispose()
		return
	}

	if q, ok := d.QueueFor(entry.Target); ok {
		// Отказ очереди (чужое/погашенное действие) гасит запись;
		// сам отказ очередь уже залогировала
		if !q.Add(entry.Action) {
			entry.Action.Dispose()
		}
		return
	}

	// Очереди нет (не существо): один синхронный запуск с нулевой дельтой
	if entry.Action.Bind(ent) {
		s.resumeOnce(entry.Action, d.ActionContext())
	}
	entry.Action.Dispose()
}

// resumeOnce - одноразовый запуск вне очереди.
// Паника действия не должна уронить планировщик.
func (s *DelayScheduler) resumeOnce(a actions.Action, ctx *actions.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "delay_scheduler",
				"kind":      a.Kind().String(),
				"panic":     r,
			}).Error("Delayed action panicked during synchronous resume")
		}
	}()
	a.Update(ctx, 0)
}

// ClearForEntity гасит все записи сущности без исполнения.
// Идемпотентна: безопасно звать для сущности без записей.
func (s *DelayScheduler) ClearForEntity(id domain.ObjectID) {
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.Target == id {
			entry.Action.Dispose()
			continue
		}
		kept = append(kept, entry)
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
	heap.Init(&s.entries)
}

// Pending возвращает число ожидающих записей
func (s *DelayScheduler) Pending() int {
	return s.entries.Len()
}

// Now - текущее накопленное время планировщика
func (s *DelayScheduler) Now() float64 {
	return s.now
}
