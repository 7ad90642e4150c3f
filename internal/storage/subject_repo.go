package storage

import (
	"context"
	"fmt"
)

// SubjectRepo persists the subject collection as one JSON document under the
// "subjects" key, the same shape the original frontend stored.
type SubjectRepo struct {
	store *Store
}

func NewSubjectRepo(store *Store) *SubjectRepo {
	return &SubjectRepo{store: store}
}

// List returns all subjects. Absent or corrupt data yields an empty list.
func (r *SubjectRepo) List(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	if _, err := r.store.GetJSON(ctx, KeySubjects, &subjects); err != nil {
		return nil, err
	}
	if subjects == nil {
		subjects = []Subject{}
	}
	return subjects, nil
}

// Put replaces the whole subject collection.
func (r *SubjectRepo) Put(ctx context.Context, subjects []Subject) error {
	if subjects == nil {
		subjects = []Subject{}
	}
	return r.store.SetJSON(ctx, KeySubjects, subjects)
}

// Get returns the subject with the given id, or nil when absent.
func (r *SubjectRepo) Get(ctx context.Context, id int64) (*Subject, error) {
	subjects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i], nil
		}
	}
	return nil, nil
}

// Update applies fn to the subject with the given id and persists the
// collection. It fails when the subject does not exist.
func (r *SubjectRepo) Update(ctx context.Context, id int64, fn func(*Subject) error) error {
	subjects, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			if err := fn(&subjects[i]); err != nil {
				return err
			}
			return r.Put(ctx, subjects)
		}
	}
	return fmt.Errorf("subject %d not found", id)
}

// Delete removes the subject with the given id and all of its tasks.
func (r *SubjectRepo) Delete(ctx context.Context, id int64) error {
	subjects, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := subjects[:0]
	for _, s := range subjects {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.Put(ctx, kept)
}

// FindTask locates a task within a subject by id, or nil when absent.
func FindTask(subject *Subject, taskID int64) *Task {
	if subject == nil {
		return nil
	}
	for i := range subject.Tasks {
		if subject.Tasks[i].ID == taskID {
			return &subject.Tasks[i]
		}
	}
	return nil
}
