package entity

import (
	"time"

	"xenopets/pkg/errors"
)

type ItemType string

const (
	ItemTypeFood        ItemType = "Food"
	ItemTypePotion      ItemType = "Potion"
	ItemTypeEquipment   ItemType = "Equipment"
	ItemTypeSpecial     ItemType = "Special"
	ItemTypeCollectible ItemType = "Collectible"
	ItemTypeTheme       ItemType = "Theme"
	ItemTypeWeapon      ItemType = "Weapon"
	ItemTypeStyle       ItemType = "Style"
)

var itemTypes = map[ItemType]bool{
	ItemTypeFood:        true,
	ItemTypePotion:      true,
	ItemTypeEquipment:   true,
	ItemTypeSpecial:     true,
	ItemTypeCollectible: true,
	ItemTypeTheme:       true,
	ItemTypeWeapon:      true,
	ItemTypeStyle:       true,
}

func (t ItemType) Valid() bool { return itemTypes[t] }

type ItemRarity string

const (
	RarityCommon    ItemRarity = "Common"
	RarityUncommon  ItemRarity = "Uncommon"
	RarityRare      ItemRarity = "Rare"
	RarityEpic      ItemRarity = "Epic"
	RarityLegendary ItemRarity = "Legendary"
	RarityUnique    ItemRarity = "Unique"
)

var rarityOrder = map[ItemRarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityUnique:    5,
}

func (r ItemRarity) Valid() bool { return r.Rank() >= 0 }

// Rank returns the position of the rarity in the Common..Unique ordering,
// or -1 for an unknown rarity.
func (r ItemRarity) Rank() int {
	rank, ok := rarityOrder[r]
	if !ok {
		return -1
	}
	return rank
}

type CurrencyKind string

const (
	CurrencyXenocoins CurrencyKind = "xenocoins"
	CurrencyCash      CurrencyKind = "cash"
)

func (k CurrencyKind) Valid() bool {
	return k == CurrencyXenocoins || k == CurrencyCash
}

// StatKey is the closed set of stat names an item or condition effect may
// target. Effect maps are validated against it at creation time so typos
// never reach gameplay.
type StatKey string

const (
	StatHealth       StatKey = "health"
	StatHunger       StatKey = "hunger"
	StatHappiness    StatKey = "happiness"
	StatStrength     StatKey = "strength"
	StatDexterity    StatKey = "dexterity"
	StatIntelligence StatKey = "intelligence"
	StatSpeed        StatKey = "speed"
	StatAttack       StatKey = "attack"
	StatDefense      StatKey = "defense"
	StatPrecision    StatKey = "precision"
	StatEvasion      StatKey = "evasion"
	StatLuck         StatKey = "luck"
)

var statKeys = map[StatKey]bool{
	StatHealth:       true,
	StatHunger:       true,
	StatHappiness:    true,
	StatStrength:     true,
	StatDexterity:    true,
	StatIntelligence: true,
	StatSpeed:        true,
	StatAttack:       true,
	StatDefense:      true,
	StatPrecision:    true,
	StatEvasion:      true,
	StatLuck:         true,
}

func (s StatKey) Valid() bool { return statKeys[s] }

type EquipmentSlot string

const (
	SlotHead     EquipmentSlot = "head"
	SlotTorso    EquipmentSlot = "torso"
	SlotLegs     EquipmentSlot = "legs"
	SlotGloves   EquipmentSlot = "gloves"
	SlotFootwear EquipmentSlot = "footwear"
)

// Item is a catalog template, not an inventory instance. Quantity is fixed at
// 1 for templates; inventory copies carry their own quantity.
type Item struct {
	ID                string              `json:"id" firestore:"id"`
	Name              string              `json:"name" firestore:"name"`
	Description       string              `json:"description" firestore:"description"`
	Type              ItemType            `json:"type" firestore:"type"`
	Rarity            ItemRarity          `json:"rarity" firestore:"rarity"`
	Price             int64               `json:"price" firestore:"price"`
	Currency          CurrencyKind        `json:"currency" firestore:"currency"`
	Effects           map[StatKey]float64 `json:"effects" firestore:"effects"`
	DailyLimit        int                 `json:"daily_limit,omitempty" firestore:"dailyLimit,omitempty"`
	DecompositionTime int                 `json:"decomposition_time,omitempty" firestore:"decompositionTime,omitempty"`
	Slot              EquipmentSlot       `json:"slot,omitempty" firestore:"slot,omitempty"`
	ImageURL          string              `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	Quantity          int                 `json:"quantity" firestore:"quantity"`
	CreatedAt         time.Time           `json:"created_at" firestore:"createdAt"`
}

// Validate checks the required fields and enum memberships of a catalog item.
func (i *Item) Validate() error {
	if i.Name == "" || i.Description == "" || i.Type == "" || i.Rarity == "" {
		return errors.Validation("Please fill in all required fields", nil)
	}
	if !i.Type.Valid() {
		return errors.Validation("Unknown item type: "+string(i.Type), nil)
	}
	if !i.Rarity.Valid() {
		return errors.Validation("Unknown item rarity: "+string(i.Rarity), nil)
	}
	if i.Currency != "" && !i.Currency.Valid() {
		return errors.Validation("Unknown currency: "+string(i.Currency), nil)
	}
	for key := range i.Effects {
		if !key.Valid() {
			return errors.Validation("Unknown effect stat: "+string(key), nil)
		}
	}
	return nil
}

// InventoryItem is an owned copy of a catalog template.
type InventoryItem struct {
	ID         string    `json:"id" firestore:"id"`
	ItemID     string    `json:"item_id" firestore:"itemId"`
	OwnerID    string    `json:"owner_id" firestore:"ownerId"`
	Quantity   int       `json:"quantity" firestore:"quantity"`
	IsEquipped bool      `json:"is_equipped" firestore:"isEquipped"`
	IsActive   bool      `json:"is_active" firestore:"isActive"`
	AcquiredAt time.Time `json:"acquired_at" firestore:"acquiredAt"`
}
