package engine

type Difficulty string

const (
	DifficultyLow    Difficulty = "LOW"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHigh   Difficulty = "HIGH"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	default:
		return false
	}
}

// XP returns the fixed XP award for completing a task of this difficulty.
func (d Difficulty) XP() int {
	switch d {
	case DifficultyLow:
		return 10
	case DifficultyHigh:
		return 30
	case DifficultyMedium:
		fallthrough
	default:
		return 20
	}
}

// DefaultDifficulty is used when user input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyMedium

// ItemCategory classifies consumables by their effect on pet health.
type ItemCategory string

const (
	CategoryFood      ItemCategory = "food"
	CategoryToy       ItemCategory = "toy"
	CategoryMedicine  ItemCategory = "medicine"
	CategoryAccessory ItemCategory = "accessory"
)

// HealthDelta returns the health restored when one unit of this category is
// consumed. Accessories (and unknown categories) are usable but restore
// nothing.
func (c ItemCategory) HealthDelta() int {
	switch c {
	case CategoryFood:
		return 20
	case CategoryToy:
		return 10
	case CategoryMedicine:
		return 50
	default:
		return 0
	}
}
