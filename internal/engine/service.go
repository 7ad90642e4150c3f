package engine

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"petrack/internal/events"
	"petrack/internal/history"
	"petrack/internal/inventory"
	"petrack/internal/storage"
)

// Options tunes the service. Zero values fall back to the reference cadence.
type Options struct {
	Logger               *slog.Logger
	NotificationDuration time.Duration
	DecayInterval        time.Duration
}

// Service owns all reward-state mutations: XP, level, coins, inventory,
// pet health and the completion history. Views never write state directly;
// they call the service and observe the bus.
type Service struct {
	db        *sql.DB
	store     *storage.Store
	state     *storage.StateRepo
	subjects  *storage.SubjectRepo
	inventory *inventory.Service
	history   *history.Service
	bus       *events.Bus
	logger    *slog.Logger
	notifier  *Notifier

	decayInterval time.Duration

	idMu   sync.Mutex
	lastID int64
	now    func() time.Time
}

func NewService(db *sql.DB, bus *events.Bus, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	decay := opts.DecayInterval
	if decay <= 0 {
		decay = DefaultDecayInterval
	}

	store := storage.NewStore(db)
	return &Service{
		db:            db,
		store:         store,
		state:         storage.NewStateRepo(store),
		subjects:      storage.NewSubjectRepo(store),
		inventory:     inventory.NewService(store, bus),
		history:       history.NewService(store, bus),
		bus:           bus,
		logger:        logger,
		notifier:      NewNotifier(opts.NotificationDuration),
		decayInterval: decay,
		now:           time.Now,
	}
}

func (s *Service) State() *storage.StateRepo      { return s.state }
func (s *Service) Subjects() *storage.SubjectRepo { return s.subjects }
func (s *Service) Inventory() *inventory.Service  { return s.inventory }
func (s *Service) History() *history.Service      { return s.history }
func (s *Service) Notifier() *Notifier            { return s.notifier }

// newID returns a creation-time-derived token (Unix milliseconds), nudged
// forward when two entities are created within the same millisecond.
func (s *Service) newID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Overview aggregates the derived statistics the status views render.
type Overview struct {
	XP          int
	Level       int
	NextLevelXP int
	Coins       int
	Health      int
	Streak      int
	TasksToday  int
	PetName     string
	Inventory   []storage.Item
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	xp, err := s.state.XP(ctx)
	if err != nil {
		return nil, err
	}
	coins, err := s.state.Coins(ctx)
	if err != nil {
		return nil, err
	}
	health, err := s.state.Health(ctx)
	if err != nil {
		return nil, err
	}
	name, err := s.state.PetName(ctx)
	if err != nil {
		return nil, err
	}
	hist, err := s.history.Get(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := s.inventory.Get(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	return &Overview{
		XP:          xp.XP,
		Level:       LevelForXP(xp.XP),
		NextLevelXP: NextLevelXP(xp.XP),
		Coins:       coins,
		Health:      ClampHealth(health),
		Streak:      Streak(hist, today),
		TasksToday:  hist[history.Day(today)],
		PetName:     name,
		Inventory:   inv,
	}, nil
}
