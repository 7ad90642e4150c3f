package engine

import (
	"context"
	"database/sql"

	"petrack/internal/events"
	"petrack/internal/history"
	"petrack/internal/storage"
)

type CompleteResult struct {
	SubjectID   int64
	TaskID      int64
	XPAwarded   int
	XPTotal     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	CoinBonus   int
	Coins       int
	Date        string
	History     map[string]int
}

// CompleteTask marks a task completed and applies the reward rules: the
// difficulty's XP award, the once-per-completion level-up coin bonus, and one
// history record for the current date. All writes happen in one transaction;
// change events are published after commit.
//
// Completing an already-completed task is rejected so re-toggling can never
// award XP twice.
func (s *Service) CompleteTask(ctx context.Context, subjectID, taskID int64) (*CompleteResult, error) {
	sub, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubjectNotFound
	}
	task := storage.FindTask(sub, taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.Completed {
		return nil, ErrAlreadyCompleted
	}

	now := s.now().UTC()
	day := history.Day(now)
	award := Difficulty(task.Difficulty).XP()

	var res *CompleteResult
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txStore := s.store.Tx(tx)
		state := storage.NewStateRepo(txStore)
		subjects := storage.NewSubjectRepo(txStore)
		hist := history.NewService(txStore, nil)

		if err := subjects.Update(ctx, subjectID, func(sub *storage.Subject) error {
			t := storage.FindTask(sub, taskID)
			if t == nil {
				return ErrTaskNotFound
			}
			if t.Completed {
				return ErrAlreadyCompleted
			}
			t.Completed = true
			t.CompletedAt = &now
			return nil
		}); err != nil {
			return err
		}

		xpData, err := state.XP(ctx)
		if err != nil {
			return err
		}
		levelBefore := LevelForXP(xpData.XP)
		xpTotal := xpData.XP + award
		levelAfter := LevelForXP(xpTotal)
		if err := state.SetXP(ctx, storage.XPData{XP: xpTotal, Level: levelAfter}); err != nil {
			return err
		}

		coins, err := state.Coins(ctx)
		if err != nil {
			return err
		}
		// One bonus per completion, no matter how many boundaries were
		// crossed in the jump.
		bonus := 0
		if levelAfter > levelBefore {
			bonus = LevelUpCoinBonus
			coins += bonus
			if err := state.SetCoins(ctx, coins); err != nil {
				return err
			}
		}

		histMap, err := hist.RecordCompletion(ctx, day)
		if err != nil {
			return err
		}

		res = &CompleteResult{
			SubjectID:   subjectID,
			TaskID:      taskID,
			XPAwarded:   award,
			XPTotal:     xpTotal,
			LevelBefore: levelBefore,
			LevelAfter:  levelAfter,
			LevelUp:     levelAfter > levelBefore,
			CoinBonus:   bonus,
			Coins:       coins,
			Date:        day,
			History:     histMap,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeyXPData})
	s.publish(events.Event{Type: events.HistoryUpdated, Date: day, History: res.History})
	if res.LevelUp {
		s.publish(events.Event{Type: events.StateChanged, Key: storage.KeyCoins})
		s.notifier.Raise("Level Up! +100 Coins")
		s.logger.Info("level up",
			"level_before", res.LevelBefore,
			"level_after", res.LevelAfter,
			"coin_bonus", res.CoinBonus,
		)
	}
	return res, nil
}
