package storage

import "context"

// DefaultPetHealth is used when no health value has been persisted yet.
const DefaultPetHealth = 80

// StateRepo reads and writes the scalar game state: coins, pet health, the
// XP snapshot and the pet's name.
type StateRepo struct {
	store *Store
}

func NewStateRepo(store *Store) *StateRepo {
	return &StateRepo{store: store}
}

func (r *StateRepo) Coins(ctx context.Context) (int, error) {
	return r.store.GetInt(ctx, KeyCoins, 0)
}

func (r *StateRepo) SetCoins(ctx context.Context, coins int) error {
	return r.store.SetInt(ctx, KeyCoins, coins)
}

func (r *StateRepo) Health(ctx context.Context) (int, error) {
	return r.store.GetInt(ctx, KeyPetHealth, DefaultPetHealth)
}

func (r *StateRepo) SetHealth(ctx context.Context, health int) error {
	return r.store.SetInt(ctx, KeyPetHealth, health)
}

// XP returns the persisted XP snapshot. Absent or corrupt data yields the
// zero snapshot.
func (r *StateRepo) XP(ctx context.Context) (XPData, error) {
	var xp XPData
	if _, err := r.store.GetJSON(ctx, KeyXPData, &xp); err != nil {
		return XPData{}, err
	}
	return xp, nil
}

func (r *StateRepo) SetXP(ctx context.Context, xp XPData) error {
	return r.store.SetJSON(ctx, KeyXPData, xp)
}

func (r *StateRepo) PetName(ctx context.Context) (string, error) {
	name, _, err := r.store.GetString(ctx, KeyPetName)
	return name, err
}

func (r *StateRepo) SetPetName(ctx context.Context, name string) error {
	return r.store.SetString(ctx, KeyPetName, name)
}
