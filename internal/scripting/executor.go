// Package scripting исполняет скриптовые события через tengo.
// Это реализация systems.ScriptRunner: ядро действий знает только
// интерфейс, конкретный исполнитель подставляется при сборке модуля.
package scripting

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// Executor хранит скомпилированные скрипты по именам.
// Скрипт получает глобали __event, __self, __triggerer и может
// делать что угодно в пределах песочницы tengo.
type Executor struct {
	mu       sync.RWMutex
	compiled map[string]*tengo.Compiled
}

func NewExecutor() *Executor {
	return &Executor{
		compiled: make(map[string]*tengo.Compiled),
	}
}

// Register компилирует исходник скрипта под именем name.
// Компиляция одна, запусков - сколько угодно (через Clone).
func (e *Executor) Register(name, source string) error {
	script := tengo.NewScript([]byte(source))
	// Глобали объявляем до компиляции, значения подставим на запуске
	_ = script.Add("__event", "")
	_ = script.Add("__self", "")
	_ = script.Add("__triggerer", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script %q: %w", name, err)
	}

	e.mu.Lock()
	e.compiled[name] = compiled
	e.mu.Unlock()
	return nil
}

// FireEvent запускает обработчик события на владельце.
// Любая ошибка скрипта логируется и глотается: скрипты не имеют права
// ронять симуляцию.
func (e *Executor) FireEvent(ev domain.ScriptEvent, owner *domain.Entity, triggerer domain.ObjectID) {
	name, ok := owner.Scripts.HandlerFor(ev)
	if !ok {
		return
	}

	e.mu.RLock()
	compiled, ok := e.compiled[name]
	e.mu.RUnlock()

	scriptLogger := logger.Log.WithFields(logrus.Fields{
		"component": "script_executor",
		"script":    name,
		"event":     ev.String(),
		"owner_id":  owner.ID,
	})

	if !ok {
		scriptLogger.Warn("Script handler is bound but not registered")
		return
	}

	run := compiled.Clone()
	if err := run.Set("__event", ev.String()); err != nil {
		scriptLogger.WithError(err).Error("Failed to set script globals")
		return
	}
	_ = run.Set("__self", owner.ID.String())
	_ = run.Set("__triggerer", triggerer.String())

	if err := run.Run(); err != nil {
		scriptLogger.WithError(err).Error("Script failed")
		return
	}
	scriptLogger.Debug("Script event handled")
}
