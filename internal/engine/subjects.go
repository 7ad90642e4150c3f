package engine

import (
	"context"
	"strings"

	"petrack/internal/events"
	"petrack/internal/storage"
)

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

// updateSubject wraps SubjectRepo.Update with the existence sentinel so
// callers can distinguish a missing subject from a missing task.
func (s *Service) updateSubject(ctx context.Context, subjectID int64, fn func(*storage.Subject) error) error {
	sub, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubjectNotFound
	}
	return s.subjects.Update(ctx, subjectID, fn)
}

// CreateSubject adds a new subject with an empty task list.
func (s *Service) CreateSubject(ctx context.Context, title, color string) (*storage.Subject, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}

	subject := storage.Subject{
		ID:    s.newID(),
		Title: t,
		Color: strings.TrimSpace(color),
		Tasks: []storage.Task{},
	}

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	subjects = append(subjects, subject)
	if err := s.subjects.Put(ctx, subjects); err != nil {
		return nil, err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return &subject, nil
}

// DeleteSubject removes a subject and all of its tasks.
func (s *Service) DeleteSubject(ctx context.Context, subjectID int64) error {
	sub, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubjectNotFound
	}
	if err := s.subjects.Delete(ctx, subjectID); err != nil {
		return err
	}
	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return nil
}

// AddTask appends a new pending task to a subject.
func (s *Service) AddTask(ctx context.Context, subjectID int64, content string, difficulty Difficulty) (*storage.Task, error) {
	c, err := normalizeTitle(content)
	if err != nil {
		return nil, err
	}
	if !difficulty.IsValid() {
		difficulty = DefaultDifficulty
	}

	task := storage.Task{
		ID:         s.newID(),
		Content:    c,
		Difficulty: string(difficulty),
	}

	err = s.updateSubject(ctx, subjectID, func(sub *storage.Subject) error {
		sub.Tasks = append(sub.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return &task, nil
}

// EditTask replaces the content of an existing task.
func (s *Service) EditTask(ctx context.Context, subjectID, taskID int64, content string) error {
	c, err := normalizeTitle(content)
	if err != nil {
		return err
	}

	err = s.updateSubject(ctx, subjectID, func(sub *storage.Subject) error {
		task := storage.FindTask(sub, taskID)
		if task == nil {
			return ErrTaskNotFound
		}
		task.Content = c
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return nil
}

// DeleteTask removes a single task from its subject.
func (s *Service) DeleteTask(ctx context.Context, subjectID, taskID int64) error {
	err := s.updateSubject(ctx, subjectID, func(sub *storage.Subject) error {
		for i := range sub.Tasks {
			if sub.Tasks[i].ID == taskID {
				sub.Tasks = append(sub.Tasks[:i], sub.Tasks[i+1:]...)
				return nil
			}
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return nil
}

// ReopenTask clears the completed flag. Earned XP is not revoked: rewards
// are granted per completion event, and CompleteTask rejects a second
// completion of the same task.
func (s *Service) ReopenTask(ctx context.Context, subjectID, taskID int64) error {
	err := s.updateSubject(ctx, subjectID, func(sub *storage.Subject) error {
		task := storage.FindTask(sub, taskID)
		if task == nil {
			return ErrTaskNotFound
		}
		task.Completed = false
		task.CompletedAt = nil
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeySubjects})
	return nil
}
