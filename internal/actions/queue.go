package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// Queue - FIFO-очередь действий одной сущности.
// Тики получает только головное действие; после его завершения новая
// голова просыпается лишь на СЛЕДУЮЩЕМ тике - так стоимость одного
// тика ограничена одним Update на сущность.
type Queue struct {
	owner *domain.Entity
	items []Action
}

func NewQueue(owner *domain.Entity) *Queue {
	return &Queue{owner: owner}
}

// Add ставит действие в хвост очереди, привязывая его к владельцу.
// Действие, уже привязанное к другой очереди, не принимается.
func (q *Queue) Add(a Action) bool {
	if a == nil {
		return false
	}
	if !a.Bind(q.owner) {
		logger.Log.WithFields(logrus.Fields{
			"component": "action_queue",
			"owner_id":  q.owner.ID,
			"kind":      a.Kind().String(),
		}).Warn("Rejected action: already bound or disposed")
		return false
	}
	q.items = append(q.items, a)
	return true
}

// Update будит головное действие.
// Паника внутри действия не покидает границу очереди: она гасится
// и превращается в StatusFailed (драйвер тиков продолжает работать).
func (q *Queue) Update(ctx *Context, dt float64) {
	if len(q.items) == 0 {
		return
	}
	head := q.items[0]

	status := q.safeUpdate(head, ctx, dt)
	if status.Terminal() {
		head.Dispose()
		q.items = q.items[1:]
	}
}

func (q *Queue) safeUpdate(a Action, ctx *Context, dt float64) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "action_queue",
				"owner_id":  q.owner.ID,
				"kind":      a.Kind().String(),
				"panic":     r,
			}).Error("Action panicked, converting to FAILED")
			status = StatusFailed
		}
	}()
	return a.Update(ctx, dt)
}

// Len возвращает число ожидающих действий (включая активное)
func (q *Queue) Len() int {
	return len(q.items)
}

// Head возвращает активное действие очереди
func (q *Queue) Head() (Action, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Clear выбрасывает ВСЕ действия, освобождая их ресурсы.
// Отмененные действия не исполняются и не откатываются.
func (q *Queue) Clear() {
	for _, a := range q.items {
		a.Dispose()
	}
	q.items = nil
}

// ClearGroup снимает все действия группы, где бы они ни стояли.
// Активная голова, попавшая под отмену, тиков больше не получит.
func (q *Queue) ClearGroup(group string) {
	if group == "" {
		return
	}
	kept := q.items[:0]
	for _, a := range q.items {
		if a.GroupID() == group {
			a.Dispose()
			continue
		}
		kept = append(kept, a)
	}
	// Хвост зануляем, чтобы не держать ссылки на отмененные действия
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
}
