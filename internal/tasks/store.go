package tasks

import (
	"fmt"
	"log/slog"
	"time"
)

// Store owns the in-memory task list and persists it after every change
type Store struct {
	snapshot *Snapshot
	tasks    []Task
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithFormat overrides the snapshot format inferred from the path
func WithFormat(format Format) Option {
	return func(s *Store) {
		if format != "" {
			s.snapshot.format = format
		}
	}
}

// WithClock sets the clock used for DateAdded
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger for load and save events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store backed by the snapshot at path without reading it
func New(path string, opts ...Option) *Store {
	s := &Store{
		snapshot: NewSnapshot(path, ""),
		tasks:    []Task{},
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads its snapshot
func Open(path string, opts ...Option) (*Store, error) {
	s := New(path, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the snapshot path
func (s *Store) Path() string {
	return s.snapshot.Path()
}

// Format returns the snapshot format
func (s *Store) Format() Format {
	return s.snapshot.Format()
}

// Load replaces the in-memory list with the snapshot on disk
func (s *Store) Load() error {
	tasks, err := s.snapshot.Load()
	if err != nil {
		s.logger.Debug("failed to load tasks", "path", s.snapshot.Path(), "error", err)
		return err
	}
	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.snapshot.Path(), "format", s.snapshot.Format(), "count", len(tasks))
	return nil
}

// Save writes the full in-memory list to disk
func (s *Store) Save() error {
	if err := s.snapshot.Save(s.tasks); err != nil {
		s.logger.Debug("failed to save tasks", "path", s.snapshot.Path(), "error", err)
		return err
	}
	s.logger.Debug("saved tasks", "path", s.snapshot.Path(), "count", len(s.tasks))
	return nil
}

// Tasks returns a copy of all tasks in insertion order
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// AddTask appends a new incomplete task and saves.
// If the save fails the task is still added and returned along with an
// error wrapping ErrStorageWrite.
func (s *Store) AddTask(description string) (Task, error) {
	task, err := newTask(len(s.tasks), description, DateOf(s.now()))
	if err != nil {
		return Task{}, err
	}

	s.tasks = append(s.tasks, task)
	s.logger.Info("task added", "id", task.ID)

	return task, s.Save()
}

// ListTasks returns incomplete and complete tasks, each in insertion order
func (s *Store) ListTasks() (incomplete, complete []Task) {
	return Partition(s.tasks)
}

// FindTask returns the first task with the given ID
func (s *Store) FindTask(id int) (Task, bool) {
	t := Find(s.tasks, id)
	if t == nil {
		return Task{}, false
	}
	return *t, true
}

// CompleteTask marks a task complete and saves.
// As with AddTask, a failed save keeps the change in memory.
func (s *Store) CompleteTask(id int) (Task, error) {
	t := Find(s.tasks, id)
	if t == nil {
		return Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if t.Complete {
		return *t, ErrAlreadyComplete
	}

	t.Complete = true
	s.logger.Info("task completed", "id", t.ID)

	return *t, s.Save()
}
