package entity

import (
	"xenopets/pkg/errors"
)

// Shop is owned 1:1 by an NPC; npcName and npcDialogue are denormalized for
// display. A shop and its NPC are created together as a unit.
type Shop struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Description string     `json:"description" firestore:"description"`
	NPCID       string     `json:"npc_id" firestore:"npcId"`
	NPCName     string     `json:"npc_name" firestore:"npcName"`
	NPCDialogue string     `json:"npc_dialogue" firestore:"npcDialogue"`
	Items       []ShopItem `json:"items" firestore:"items"`
	IsActive    bool       `json:"is_active" firestore:"isActive"`
}

func (s *Shop) Validate() error {
	if s.Name == "" || s.Description == "" || s.NPCName == "" || s.NPCDialogue == "" {
		return errors.Validation("Please fill in all required fields", nil)
	}
	return nil
}

// References reports whether any listing in the shop points at the given
// catalog item.
func (s *Shop) References(itemID string) bool {
	for _, si := range s.Items {
		if si.ItemID == itemID {
			return true
		}
	}
	return false
}

// ShopItem is a priced listing binding a catalog item to a shop.
type ShopItem struct {
	ID          string       `json:"id" firestore:"id"`
	ItemID      string       `json:"item_id" firestore:"itemId"`
	Price       int64        `json:"price" firestore:"price"`
	Currency    CurrencyKind `json:"currency" firestore:"currency"`
	StockLimit  int          `json:"stock_limit,omitempty" firestore:"stockLimit,omitempty"`
	IsAvailable bool         `json:"is_available" firestore:"isAvailable"`
}

type NPC struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Personality string   `json:"personality" firestore:"personality"`
	Dialogue    string   `json:"dialogue" firestore:"dialogue"`
	Services    []string `json:"services" firestore:"services"`
	ImageURL    string   `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
}
