package entity

import (
	"time"

	"xenopets/pkg/errors"
)

type PetSpecies string

const (
	SpeciesDragon  PetSpecies = "Dragon"
	SpeciesPhoenix PetSpecies = "Phoenix"
	SpeciesGriffin PetSpecies = "Griffin"
	SpeciesUnicorn PetSpecies = "Unicorn"
)

func (s PetSpecies) Valid() bool {
	switch s {
	case SpeciesDragon, SpeciesPhoenix, SpeciesGriffin, SpeciesUnicorn:
		return true
	}
	return false
}

type PetStyle string

const (
	StyleNormal PetStyle = "normal"
	StyleFire   PetStyle = "fire"
	StyleIce    PetStyle = "ice"
	StyleShadow PetStyle = "shadow"
	StyleLight  PetStyle = "light"
	StyleKing   PetStyle = "king"
	StyleBaby   PetStyle = "baby"
)

type PetPersonality string

const (
	PersonalitySanguine    PetPersonality = "Sanguine"
	PersonalityCholeric    PetPersonality = "Choleric"
	PersonalityMelancholic PetPersonality = "Melancholic"
	PersonalityPhlegmatic  PetPersonality = "Phlegmatic"
)

type ConditionType string

const (
	ConditionSick      ConditionType = "sick"
	ConditionCold      ConditionType = "cold"
	ConditionHot       ConditionType = "hot"
	ConditionFrozen    ConditionType = "frozen"
	ConditionParalyzed ConditionType = "paralyzed"
	ConditionPoisoned  ConditionType = "poisoned"
	ConditionBlessed   ConditionType = "blessed"
)

func (t ConditionType) Valid() bool {
	switch t {
	case ConditionSick, ConditionCold, ConditionHot, ConditionFrozen,
		ConditionParalyzed, ConditionPoisoned, ConditionBlessed:
		return true
	}
	return false
}

// PetCondition is a status effect applied to a pet. Duration is in game
// ticks; zero means the condition persists until cured.
type PetCondition struct {
	ID          string              `json:"id" firestore:"id"`
	Type        ConditionType       `json:"type" firestore:"type"`
	Name        string              `json:"name" firestore:"name"`
	Description string              `json:"description" firestore:"description"`
	Effects     map[StatKey]float64 `json:"effects" firestore:"effects"`
	Duration    int                 `json:"duration,omitempty" firestore:"duration,omitempty"`
	AppliedAt   time.Time           `json:"applied_at" firestore:"appliedAt"`
}

// Equipment holds up to five named slots, each with at most one item.
type Equipment struct {
	Head     *Item `json:"head,omitempty" firestore:"head,omitempty"`
	Torso    *Item `json:"torso,omitempty" firestore:"torso,omitempty"`
	Legs     *Item `json:"legs,omitempty" firestore:"legs,omitempty"`
	Gloves   *Item `json:"gloves,omitempty" firestore:"gloves,omitempty"`
	Footwear *Item `json:"footwear,omitempty" firestore:"footwear,omitempty"`
}

type Weapon struct {
	ID          string              `json:"id" firestore:"id"`
	Name        string              `json:"name" firestore:"name"`
	Type        string              `json:"type" firestore:"type"`
	Rarity      ItemRarity          `json:"rarity" firestore:"rarity"`
	Stats       map[StatKey]float64 `json:"stats" firestore:"stats"`
	ScalingStat StatKey             `json:"scaling_stat" firestore:"scalingStat"`
}

const (
	PrimaryAttrMin = 0
	PrimaryAttrMax = 10
)

type Pet struct {
	ID      string     `json:"id" firestore:"id"`
	Name    string     `json:"name" firestore:"name"`
	Species PetSpecies `json:"species" firestore:"species"`
	Style   PetStyle   `json:"style" firestore:"style"`
	Level   int        `json:"level" firestore:"level"`
	OwnerID string     `json:"owner_id" firestore:"ownerId"`

	// Primary attributes, 0-10 scale
	Happiness float64 `json:"happiness" firestore:"happiness"`
	Health    float64 `json:"health" firestore:"health"`
	Hunger    float64 `json:"hunger" firestore:"hunger"`

	// Secondary attributes, determine level
	Strength     float64 `json:"strength" firestore:"strength"`
	Dexterity    float64 `json:"dexterity" firestore:"dexterity"`
	Intelligence float64 `json:"intelligence" firestore:"intelligence"`
	Speed        float64 `json:"speed" firestore:"speed"`
	Attack       float64 `json:"attack" firestore:"attack"`
	Defense      float64 `json:"defense" firestore:"defense"`
	Precision    float64 `json:"precision" firestore:"precision"`
	Evasion      float64 `json:"evasion" firestore:"evasion"`
	Luck         float64 `json:"luck" firestore:"luck"`

	Personality PetPersonality `json:"personality" firestore:"personality"`
	Conditions  []PetCondition `json:"conditions" firestore:"conditions"`
	Equipment   Equipment      `json:"equipment" firestore:"equipment"`
	Weapon      *Weapon        `json:"weapon,omitempty" firestore:"weapon,omitempty"`

	HatchTime       *time.Time `json:"hatch_time,omitempty" firestore:"hatchTime,omitempty"`
	IsAlive         bool       `json:"is_alive" firestore:"isAlive"`
	DeathDate       *time.Time `json:"death_date,omitempty" firestore:"deathDate,omitempty"`
	LastInteraction time.Time  `json:"last_interaction" firestore:"lastInteraction"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (p *Pet) Validate() error {
	if p.Name == "" || p.OwnerID == "" {
		return errors.Validation("Please fill in all required fields", nil)
	}
	if !p.Species.Valid() {
		return errors.Validation("Unknown pet species: "+string(p.Species), nil)
	}
	return nil
}

// ClampPrimaries forces happiness, health and hunger back into the 0-10
// scale after effects are applied.
func (p *Pet) ClampPrimaries() {
	p.Happiness = clamp(p.Happiness)
	p.Health = clamp(p.Health)
	p.Hunger = clamp(p.Hunger)
}

func clamp(v float64) float64 {
	if v < PrimaryAttrMin {
		return PrimaryAttrMin
	}
	if v > PrimaryAttrMax {
		return PrimaryAttrMax
	}
	return v
}

// ComputeLevel derives the pet level from its secondary attributes.
func (p *Pet) ComputeLevel() int {
	sum := p.Strength + p.Dexterity + p.Intelligence + p.Speed +
		p.Attack + p.Defense + p.Precision + p.Evasion + p.Luck
	return 1 + int(sum/10)
}

// ApplyEffects applies a stat-delta map to the pet. Primary attributes are
// clamped; secondary attributes never drop below zero. Dead pets are frozen
// and ignore effects.
func (p *Pet) ApplyEffects(effects map[StatKey]float64) {
	if !p.IsAlive {
		return
	}
	for key, delta := range effects {
		switch key {
		case StatHealth:
			p.Health += delta
		case StatHunger:
			p.Hunger += delta
		case StatHappiness:
			p.Happiness += delta
		case StatStrength:
			p.Strength = nonNegative(p.Strength + delta)
		case StatDexterity:
			p.Dexterity = nonNegative(p.Dexterity + delta)
		case StatIntelligence:
			p.Intelligence = nonNegative(p.Intelligence + delta)
		case StatSpeed:
			p.Speed = nonNegative(p.Speed + delta)
		case StatAttack:
			p.Attack = nonNegative(p.Attack + delta)
		case StatDefense:
			p.Defense = nonNegative(p.Defense + delta)
		case StatPrecision:
			p.Precision = nonNegative(p.Precision + delta)
		case StatEvasion:
			p.Evasion = nonNegative(p.Evasion + delta)
		case StatLuck:
			p.Luck = nonNegative(p.Luck + delta)
		}
	}
	p.ClampPrimaries()
	p.Level = p.ComputeLevel()
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Die marks the pet dead and freezes its attributes. Dead pets stay
// queryable; statistics count them in the survival-rate denominator.
func (p *Pet) Die(at time.Time) {
	if !p.IsAlive {
		return
	}
	p.IsAlive = false
	p.DeathDate = &at
	p.UpdatedAt = at
}
