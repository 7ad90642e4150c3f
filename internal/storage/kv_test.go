package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStringRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, ok, _ := store.GetString(ctx, KeyPetName); ok {
		t.Fatalf("expected absent key")
	}
	if err := store.SetString(ctx, KeyPetName, "Biscuit"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.GetString(ctx, KeyPetName)
	if err != nil || !ok || got != "Biscuit" {
		t.Fatalf("got (%q, %v, %v), want (Biscuit, true, nil)", got, ok, err)
	}

	// Upsert overwrites.
	if err := store.SetString(ctx, KeyPetName, "Waffles"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.GetString(ctx, KeyPetName)
	if got != "Waffles" {
		t.Fatalf("got %q, want Waffles", got)
	}
}

func TestIntDefaultsOnAbsentAndMalformed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.GetInt(ctx, KeyCoins, 0)
	if err != nil || n != 0 {
		t.Fatalf("absent: got (%d, %v), want (0, nil)", n, err)
	}

	if err := store.SetString(ctx, KeyCoins, "not a number"); err != nil {
		t.Fatalf("set: %v", err)
	}
	n, err = store.GetInt(ctx, KeyCoins, 7)
	if err != nil || n != 7 {
		t.Fatalf("malformed: got (%d, %v), want fallback (7, nil)", n, err)
	}
}

func TestJSONFailSoft(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetString(ctx, KeyInventory, "{broken json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	var items []Item
	ok, err := store.GetJSON(ctx, KeyInventory, &items)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || items != nil {
		t.Fatalf("corrupt value must decode as absent, got ok=%v items=%v", ok, items)
	}
}

func TestStateRepoDefaults(t *testing.T) {
	store := newTestStore(t)
	state := NewStateRepo(store)
	ctx := context.Background()

	health, err := state.Health(ctx)
	if err != nil || health != DefaultPetHealth {
		t.Fatalf("health=(%d, %v), want (%d, nil)", health, err, DefaultPetHealth)
	}
	coins, err := state.Coins(ctx)
	if err != nil || coins != 0 {
		t.Fatalf("coins=(%d, %v), want (0, nil)", coins, err)
	}
	xp, err := state.XP(ctx)
	if err != nil || xp.XP != 0 || xp.Level != 0 {
		t.Fatalf("xp=(%+v, %v), want zero snapshot", xp, err)
	}
}

func TestSubjectRepoFailSoftAndRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewSubjectRepo(store)
	ctx := context.Background()

	if err := store.SetString(ctx, KeySubjects, `"nonsense"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	subjects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subjects) != 0 {
		t.Fatalf("corrupt subjects must read as empty, got %v", subjects)
	}

	want := []Subject{{ID: 1, Title: "Math", Tasks: []Task{{ID: 2, Content: "Revise", Difficulty: "LOW"}}}}
	if err := repo.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Math" || len(got[0].Tasks) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
