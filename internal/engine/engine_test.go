package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"petrack/internal/events"
	"petrack/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, events.NewBus(nil), Options{})
}

func setXP(t *testing.T, svc *Service, xp int) {
	t.Helper()
	ctx := context.Background()
	if err := svc.State().SetXP(ctx, storage.XPData{XP: xp, Level: LevelForXP(xp)}); err != nil {
		t.Fatalf("set xp: %v", err)
	}
}

func setCoins(t *testing.T, svc *Service, coins int) {
	t.Helper()
	if err := svc.State().SetCoins(context.Background(), coins); err != nil {
		t.Fatalf("set coins: %v", err)
	}
}

func addTask(t *testing.T, svc *Service, d Difficulty) (subjectID, taskID int64) {
	t.Helper()
	ctx := context.Background()
	sub, err := svc.CreateSubject(ctx, "Math", "blue")
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	task, err := svc.AddTask(ctx, sub.ID, "Do homework", d)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return sub.ID, task.ID
}

func TestDifficultyXPAwards(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyLow, 10},
		{DifficultyMedium, 20},
		{DifficultyHigh, 30},
	}
	for _, tc := range cases {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			svc := newTestService(t)
			ctx := context.Background()

			subID, taskID := addTask(t, svc, tc.difficulty)
			res, err := svc.CompleteTask(ctx, subID, taskID)
			if err != nil {
				t.Fatalf("complete: %v", err)
			}
			if res.XPAwarded != tc.want {
				t.Fatalf("XPAwarded=%d, want %d", res.XPAwarded, tc.want)
			}
			if res.XPTotal != tc.want {
				t.Fatalf("XPTotal=%d, want %d", res.XPTotal, tc.want)
			}
		})
	}
}

func TestLevelDerivedFromXP(t *testing.T) {
	if got := LevelForXP(0); got != 0 {
		t.Fatalf("LevelForXP(0)=%d, want 0", got)
	}
	if got := LevelForXP(99); got != 0 {
		t.Fatalf("LevelForXP(99)=%d, want 0", got)
	}
	if got := LevelForXP(100); got != 1 {
		t.Fatalf("LevelForXP(100)=%d, want 1", got)
	}
	if got := LevelForXP(250); got != 2 {
		t.Fatalf("LevelForXP(250)=%d, want 2", got)
	}
	if got := NextLevelXP(95); got != 100 {
		t.Fatalf("NextLevelXP(95)=%d, want 100", got)
	}
	if got := NextLevelXP(125); got != 200 {
		t.Fatalf("NextLevelXP(125)=%d, want 200", got)
	}
}

func TestLevelUpGrantsExactlyOneBonus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// 95 XP + HIGH(+30) crosses the boundary once: 125 XP, level 0 -> 1.
	setXP(t, svc, 95)

	subID, taskID := addTask(t, svc, DifficultyHigh)
	res, err := svc.CompleteTask(ctx, subID, taskID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.XPTotal != 125 {
		t.Fatalf("XPTotal=%d, want 125", res.XPTotal)
	}
	if !res.LevelUp || res.LevelBefore != 0 || res.LevelAfter != 1 {
		t.Fatalf("level transition = %d -> %d (levelUp=%v), want 0 -> 1", res.LevelBefore, res.LevelAfter, res.LevelUp)
	}
	if res.CoinBonus != LevelUpCoinBonus {
		t.Fatalf("CoinBonus=%d, want %d", res.CoinBonus, LevelUpCoinBonus)
	}
	coins, err := svc.State().Coins(ctx)
	if err != nil {
		t.Fatalf("coins: %v", err)
	}
	if coins != 100 {
		t.Fatalf("coins=%d, want 100", coins)
	}
	if svc.Notifier().Current() == nil {
		t.Fatalf("expected a live level-up notification")
	}
}

func TestMultiLevelJumpStillOneBonus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// A corrupt-looking but reachable state: jumping several levels in one
	// completion must still pay a single bonus.
	setXP(t, svc, 95)
	subID, taskID := addTask(t, svc, DifficultyHigh)

	// Push the stored XP far past two boundaries before completing.
	setXP(t, svc, 295)
	res, err := svc.CompleteTask(ctx, subID, taskID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.LevelBefore != 2 || res.LevelAfter != 3 {
		t.Fatalf("level transition = %d -> %d, want 2 -> 3", res.LevelBefore, res.LevelAfter)
	}
	coins, _ := svc.State().Coins(ctx)
	if coins != LevelUpCoinBonus {
		t.Fatalf("coins=%d, want exactly one bonus (%d)", coins, LevelUpCoinBonus)
	}
}

func TestReopenDoesNotRevokeXP(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	subID, taskID := addTask(t, svc, DifficultyMedium)
	if _, err := svc.CompleteTask(ctx, subID, taskID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.ReopenTask(ctx, subID, taskID); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	xp, err := svc.State().XP(ctx)
	if err != nil {
		t.Fatalf("xp: %v", err)
	}
	if xp.XP != 20 {
		t.Fatalf("xp after reopen=%d, want 20", xp.XP)
	}

	sub, err := svc.Subjects().Get(ctx, subID)
	if err != nil {
		t.Fatalf("get subject: %v", err)
	}
	task := storage.FindTask(sub, taskID)
	if task == nil || task.Completed || task.CompletedAt != nil {
		t.Fatalf("task not reopened: %+v", task)
	}
}

func TestCompleteTwiceRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	subID, taskID := addTask(t, svc, DifficultyLow)
	if _, err := svc.CompleteTask(ctx, subID, taskID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, subID, taskID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second complete err=%v, want ErrAlreadyCompleted", err)
	}

	xp, _ := svc.State().XP(ctx)
	if xp.XP != 10 {
		t.Fatalf("xp=%d, want 10", xp.XP)
	}
}

func TestCompletionRecordsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	subID, taskID := addTask(t, svc, DifficultyLow)
	res, err := svc.CompleteTask(ctx, subID, taskID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	hist, err := svc.History().Get(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if hist[res.Date] != 1 {
		t.Fatalf("history[%s]=%d, want 1", res.Date, hist[res.Date])
	}
}

func TestPurchaseInsufficientCoinsIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	setCoins(t, svc, 40)
	if _, err := svc.Purchase(ctx, 1); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("purchase err=%v, want ErrInsufficientCoins", err)
	}

	coins, _ := svc.State().Coins(ctx)
	if coins != 40 {
		t.Fatalf("coins=%d, want unchanged 40", coins)
	}
	inv, _ := svc.Inventory().Get(ctx)
	if len(inv) != 0 {
		t.Fatalf("inventory=%v, want empty", inv)
	}
}

func TestPurchaseUnknownItemRejected(t *testing.T) {
	svc := newTestService(t)
	setCoins(t, svc, 1000)
	if _, err := svc.Purchase(context.Background(), 999); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("err=%v, want ErrUnknownItem", err)
	}
}

func TestPurchaseSpendsAndMerges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	setCoins(t, svc, 200)
	res1, err := svc.Purchase(ctx, 1) // 50 coins
	if err != nil {
		t.Fatalf("purchase #1: %v", err)
	}
	if res1.Coins != 150 {
		t.Fatalf("coins after #1=%d, want 150", res1.Coins)
	}
	res2, err := svc.Purchase(ctx, 1)
	if err != nil {
		t.Fatalf("purchase #2: %v", err)
	}
	if res2.Coins != 100 {
		t.Fatalf("coins after #2=%d, want 100", res2.Coins)
	}

	qty, err := svc.Inventory().Quantity(ctx, 1)
	if err != nil {
		t.Fatalf("quantity: %v", err)
	}
	if qty != 2 {
		t.Fatalf("quantity=%d, want 2 (merged)", qty)
	}
}

func TestPackPurchaseGrantsPackSize(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	setCoins(t, svc, 150)
	if _, err := svc.Purchase(ctx, 5); err != nil { // Gourmet Treats Pack of 3
		t.Fatalf("purchase: %v", err)
	}
	qty, _ := svc.Inventory().Quantity(ctx, 5)
	if qty != 3 {
		t.Fatalf("quantity=%d, want 3", qty)
	}
}

func TestUseItemRestoresHealthClamped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	setCoins(t, svc, 50)
	if _, err := svc.Purchase(ctx, 1); err != nil { // food, +20
		t.Fatalf("purchase: %v", err)
	}
	if err := svc.State().SetHealth(ctx, 90); err != nil {
		t.Fatalf("set health: %v", err)
	}

	res, err := svc.UseItem(ctx, 1)
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if res.HealthBefore != 90 || res.HealthAfter != 100 {
		t.Fatalf("health %d -> %d, want 90 -> 100 (clamped)", res.HealthBefore, res.HealthAfter)
	}
	if res.Remaining != 0 {
		t.Fatalf("remaining=%d, want 0", res.Remaining)
	}

	// The last unit was consumed, so the entry must be gone.
	inv, _ := svc.Inventory().Get(ctx)
	for _, it := range inv {
		if it.ID == 1 {
			t.Fatalf("item 1 still present with quantity %d", it.Quantity)
		}
	}
}

func TestUseItemNotOwnedRejected(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.UseItem(context.Background(), 3); !errors.Is(err, ErrItemNotOwned) {
		t.Fatalf("err=%v, want ErrItemNotOwned", err)
	}
}

func TestHealthDeltasByCategory(t *testing.T) {
	cases := []struct {
		category ItemCategory
		want     int
	}{
		{CategoryFood, 20},
		{CategoryToy, 10},
		{CategoryMedicine, 50},
		{CategoryAccessory, 0},
	}
	for _, tc := range cases {
		if got := tc.category.HealthDelta(); got != tc.want {
			t.Fatalf("HealthDelta(%s)=%d, want %d", tc.category, got, tc.want)
		}
	}
}

func TestDecayClampsAtZero(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.State().SetHealth(ctx, 1); err != nil {
		t.Fatalf("set health: %v", err)
	}
	h, err := svc.DecayOnce(ctx)
	if err != nil {
		t.Fatalf("decay: %v", err)
	}
	if h != 0 {
		t.Fatalf("health=%d, want 0", h)
	}
	h, err = svc.DecayOnce(ctx)
	if err != nil {
		t.Fatalf("decay at floor: %v", err)
	}
	if h != 0 {
		t.Fatalf("health after floor decay=%d, want 0", h)
	}
}

func TestDefaultHealthWhenUnset(t *testing.T) {
	svc := newTestService(t)
	h, err := svc.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h != storage.DefaultPetHealth {
		t.Fatalf("health=%d, want default %d", h, storage.DefaultPetHealth)
	}
}

func TestStreakWalksBackFromToday(t *testing.T) {
	hist := map[string]int{
		"2024-01-01": 2,
		"2024-01-02": 1,
	}
	day2 := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	if got := Streak(hist, day2); got != 2 {
		t.Fatalf("Streak(day2)=%d, want 2", got)
	}
	if got := Streak(hist, day3); got != 0 {
		t.Fatalf("Streak(day3)=%d, want 0", got)
	}
}

func TestStreakIgnoresZeroCountDays(t *testing.T) {
	hist := map[string]int{
		"2024-01-01": 1,
		"2024-01-02": 0,
		"2024-01-03": 3,
	}
	day3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if got := Streak(hist, day3); got != 1 {
		t.Fatalf("Streak(day3)=%d, want 1 (zero day breaks the run)", got)
	}
}

func TestNotificationAutoClears(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)
	defer n.Close()

	n.Raise("Level Up! +100 Coins")
	if n.Current() == nil {
		t.Fatalf("expected live notification")
	}

	time.Sleep(200 * time.Millisecond)
	if n.Current() != nil {
		t.Fatalf("expected notification to auto-clear")
	}
}
