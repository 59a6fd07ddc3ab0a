// Package store holds the in-memory task list and its active filter.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines serialize access themselves (see services.TaskService).
package store

import (
	"iter"
	"strings"
	"time"
	"unicode/utf8"

	"taskflow/app/models"
)

// MaxTitleLength is the longest title kept, in runes.
const MaxTitleLength = 100

// Store owns an ordered, newest-first task collection.
type Store struct {
	tasks  []models.Task
	filter models.Filter
	nextID uint64
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTasks replaces the initial collection. Order is kept as given.
func WithTasks(tasks []models.Task) Option {
	return func(s *Store) {
		s.tasks = append([]models.Task(nil), tasks...)
	}
}

// WithFilter sets the initial filter.
func WithFilter(f models.Filter) Option {
	return func(s *Store) {
		s.filter = f.Normalize()
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now, filter: models.FilterAll}
	for _, opt := range opts {
		opt(s)
	}
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID
		}
	}
	return s
}

// NewSeeded creates a store holding the three example tasks.
func NewSeeded(opts ...Option) *Store {
	return New(append([]Option{WithTasks(SeedTasks())}, opts...)...)
}

// SeedTasks returns the example tasks a fresh dashboard starts with.
func SeedTasks() []models.Task {
	day := func(d int) time.Time {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	return []models.Task{
		{ID: 1, Title: "Design new dashboard", Description: "Create wireframes and mockups", CreatedAt: day(1)},
		{ID: 2, Title: "Review PR #42", Description: "Check the authentication flow", Completed: true, CreatedAt: day(2)},
		{ID: 3, Title: "Update documentation", Description: "Add API examples", CreatedAt: day(3)},
	}
}

// AddTask prepends a new active task. A blank title is ignored and
// reported with ok == false.
func (s *Store) AddTask(title string) (task models.Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, false
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		title = strings.TrimSpace(string([]rune(title)[:MaxTitleLength]))
	}

	s.nextID++
	task = models.Task{
		ID:        s.nextID,
		Title:     title,
		CreatedAt: s.now(),
	}
	s.tasks = append([]models.Task{task}, s.tasks...)
	return task, true
}

// ToggleTask flips the completed flag of the task with id. Unknown ids are ignored.
func (s *Store) ToggleTask(id uint64) {
	if i := s.index(id); i >= 0 {
		s.tasks[i].Completed = !s.tasks[i].Completed
	}
}

// DeleteTask removes the task with id. Unknown ids are ignored.
func (s *Store) DeleteTask(id uint64) {
	if i := s.index(id); i >= 0 {
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	}
}

// SetFilter replaces the active filter. Out-of-range values become FilterAll.
func (s *Store) SetFilter(f models.Filter) {
	s.filter = f.Normalize()
}

// Filter returns the active filter.
func (s *Store) Filter() models.Filter {
	return s.filter
}

// VisibleTasks yields the tasks matching the active filter, newest first.
func (s *Store) VisibleTasks() iter.Seq[models.Task] {
	return s.Visible(s.filter)
}

// Visible yields the tasks matching f without changing the active filter.
// The sequence reads the collection each time it is ranged over.
func (s *Store) Visible(f models.Filter) iter.Seq[models.Task] {
	f = f.Normalize()
	return func(yield func(models.Task) bool) {
		for _, t := range s.tasks {
			if !f.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Task looks up a task by id.
func (s *Store) Task(id uint64) (models.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return models.Task{}, false
}

// Tasks returns a copy of the whole collection.
func (s *Store) Tasks() []models.Task {
	return append([]models.Task(nil), s.tasks...)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats computes counts and the completion rate.
func (s *Store) Stats() models.Stats {
	st := models.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	st.CompletionRate = completionRate(st.Completed, st.Total)
	return st
}

// completionRate is completed/total as a percentage rounded half up.
func completionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

func (s *Store) index(id uint64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
