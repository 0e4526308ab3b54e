package domain

import "strings"

// ScriptEvent - внутренний числовой идентификатор скриптового события
type ScriptEvent uint8

const (
	EventUnknown ScriptEvent = iota
	EventOnAttacked
	EventOnDamaged
	EventOnDeath
	EventOnUsed
	EventOnConversation
	EventOnDestroyed
	EventOnBlocked
	EventOnSpellCastAt
	// В будущем: EventOnPerception, EventOnHeartbeat...
)

// Маппинг для конвертации строк конфигурации -> Domain
var eventStringToID = map[string]ScriptEvent{
	"ON_ATTACKED":      EventOnAttacked,
	"ON_DAMAGED":       EventOnDamaged,
	"ON_DEATH":         EventOnDeath,
	"ON_USED":          EventOnUsed,
	"ON_CONVERSATION":  EventOnConversation,
	"ON_DESTROYED":     EventOnDestroyed,
	"ON_BLOCKED":       EventOnBlocked,
	"ON_SPELL_CAST_AT": EventOnSpellCastAt,
}

// Маппинг для логов Domain -> String
var eventIDToString = map[ScriptEvent]string{
	EventOnAttacked:     "ON_ATTACKED",
	EventOnDamaged:      "ON_DAMAGED",
	EventOnDeath:        "ON_DEATH",
	EventOnUsed:         "ON_USED",
	EventOnConversation: "ON_CONVERSATION",
	EventOnDestroyed:    "ON_DESTROYED",
	EventOnBlocked:      "ON_BLOCKED",
	EventOnSpellCastAt:  "ON_SPELL_CAST_AT",
}

// ParseScriptEvent конвертирует строку в ScriptEvent
func ParseScriptEvent(s string) ScriptEvent {
	// Нечувствительность к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := eventStringToID[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (ev ScriptEvent) String() string {
	if val, ok := eventIDToString[ev]; ok {
		return val
	}
	return "UNKNOWN"
}
