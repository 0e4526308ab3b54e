// Package actions реализует возобновляемые действия и их очереди.
// Действие - атомарная единица поведения существа: каждый тик очередь
// будит головное действие, пока оно не завершится или не откажет.
package actions

import "strings"

// Status - стадия жизни действия
type Status uint8

const (
	// StatusPending - поставлено в очередь, еще не получало тиков
	StatusPending Status = iota
	// StatusInProgress - работает, нужны еще тики
	StatusInProgress
	// StatusComplete - успешно завершено, убирается из очереди
	StatusComplete
	// StatusFailed - отказ; действие выбрасывается без отката и ретраев
	StatusFailed
)

// Terminal - конечное ли это состояние (после него тиков не будет)
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusComplete:
		return "COMPLETE"
	case StatusFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

// Kind - внутренний числовой идентификатор варианта действия.
// Набор закрыт: новые варианты добавляются только здесь.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMoveToPoint
	KindMoveToObject
	KindFollow
	KindWait
	KindAttack
	KindCastSpell
	KindUseObject
	KindSpeak
	KindEquipItem
	KindDestroyObject
)

// Маппинг для конвертации строк -> Kind
var kindStringToID = map[string]Kind{
	"MOVE_TO_POINT":  KindMoveToPoint,
	"MOVE_TO_OBJECT": KindMoveToObject,
	"FOLLOW":         KindFollow,
	"WAIT":           KindWait,
	"ATTACK":         KindAttack,
	"CAST_SPELL":     KindCastSpell,
	"USE_OBJECT":     KindUseObject,
	"SPEAK":          KindSpeak,
	"EQUIP_ITEM":     KindEquipItem,
	"DESTROY_OBJECT": KindDestroyObject,
}

// Маппинг для логов Kind -> String
var kindIDToString = map[Kind]string{
	KindMoveToPoint:   "MOVE_TO_POINT",
	KindMoveToObject:  "MOVE_TO_OBJECT",
	KindFollow:        "FOLLOW",
	KindWait:          "WAIT",
	KindAttack:        "ATTACK",
	KindCastSpell:     "CAST_SPELL",
	KindUseObject:     "USE_OBJECT",
	KindSpeak:         "SPEAK",
	KindEquipItem:     "EQUIP_ITEM",
	KindDestroyObject: "DESTROY_OBJECT",
}

// ParseKind конвертирует строку в Kind (нечувствительно к регистру)
func ParseKind(s string) Kind {
	if val, ok := kindStringToID[strings.ToUpper(s)]; ok {
		return val
	}
	return KindUnknown
}

func (k Kind) String() string {
	if val, ok := kindIDToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
