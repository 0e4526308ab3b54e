package domain

// ObjectID - стабильный идентификатор игрового объекта внутри модуля.
// Порядок создания сущностей определяет порядок обхода в тике,
// поэтому ID никогда не переиспользуются.
type ObjectID string

func (id ObjectID) String() string {
	return string(id)
}

// ObjectInvalid - "пустая" ссылка (аналог OBJECT_INVALID из скриптового движка)
const ObjectInvalid ObjectID = ""

// EntityType - грубая классификация объекта
type EntityType string

const (
	EntityTypeCreature  EntityType = "CREATURE"
	EntityTypePlaceable EntityType = "PLACEABLE"
	EntityTypeItem      EntityType = "ITEM"
	EntityTypeTrigger   EntityType = "TRIGGER"
)

// EquipSlot - слот экипировки существа
type EquipSlot uint8

const (
	SlotNone EquipSlot = iota
	SlotRightWeapon
	SlotLeftWeapon
	SlotArmor
	SlotHead
)
