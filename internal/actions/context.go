package actions

import (
	"math/rand"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// Context передает действию коллабораторов зоны.
// Все ссылки подставляются композицией при сборке модуля; действие
// ничего не ищет само и не хранит ссылок дольше одного Update.
type Context struct {
	Area     *domain.Area
	Resolver *systems.MovementResolver
	Scripts  systems.ScriptRunner // может быть nil
	Rng      *rand.Rand
}

// Action - одна возобновляемая единица поведения.
//
// Жизненный цикл: конструктор с неизменяемыми параметрами ->
// Bind при постановке в очередь (владелец назначается ровно один раз) ->
// Update каждый тик до терминального статуса -> Dispose.
// Действие не может состоять в двух очередях одновременно.
type Action interface {
	Kind() Kind

	// GroupID - необязательный ключ групповой отмены
	// (например, снять все "combat"-действия, не трогая диалог).
	GroupID() string

	// Bind привязывает действие к владельцу. Повторная привязка
	// уже занятого действия - ошибка вызывающего; Bind вернет false.
	Bind(owner *domain.Entity) bool

	// Update продвигает действие на dt секунд и возвращает статус.
	// После терминального статуса Update больше не вызывается.
	Update(ctx *Context, dt float64) Status

	// Dispose освобождает захваченные ресурсы. Идемпотентен.
	Dispose()
}

// base - общее состояние всех вариантов действия
type base struct {
	kind     Kind
	group    string
	owner    *domain.Entity
	disposed bool
}

func (b *base) Kind() Kind      { return b.kind }
func (b *base) GroupID() string { return b.group }

func (b *base) Bind(owner *domain.Entity) bool {
	if b.owner != nil || b.disposed {
		return false
	}
	b.owner = owner
	return true
}

func (b *base) Dispose() {
	b.owner = nil
	b.disposed = true
}
