package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
)

// EquipItem надевает предмет в слот владельца.
// Мгновенное действие: один тик, без анимаций.
type EquipItem struct {
	base
	item domain.ObjectID
	slot domain.EquipSlot
}

func NewEquipItem(item domain.ObjectID, slot domain.EquipSlot, group string) *EquipItem {
	return &EquipItem{
		base: base{kind: KindEquipItem, group: group},
		item: item,
		slot: slot,
	}
}

func (a *EquipItem) Update(ctx *Context, dt float64) Status {
	if a.owner == nil {
		return StatusFailed
	}
	item, ok := ctx.Area.GetEntity(a.item)
	if !ok || item.Item == nil {
		return StatusFailed
	}
	if a.slot == domain.SlotNone {
		// Слот берем из самого предмета
		a.slot = item.Item.Slot
	}
	if a.slot == domain.SlotNone {
		return StatusFailed
	}
	if a.owner.Equipment == nil {
		a.owner.Equipment = &domain.EquipmentComponent{}
	}
	a.owner.Equipment.Equip(a.slot, item.ID)
	return StatusComplete
}
