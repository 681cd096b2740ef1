package router

import (
	"context"
	"sort"
	"strings"
	"sync"

	"quizcafe/internal/domain"
)

// memStore is an in-memory question and category store.
type memStore struct {
	mu         sync.Mutex
	categories map[int64]*domain.Category
	questions  map[int64]*domain.Question
	nextID     int64
}

func newMemStore(categories ...string) *memStore {
	s := &memStore{
		categories: map[int64]*domain.Category{},
		questions:  map[int64]*domain.Question{},
	}
	for i, c := range categories {
		id := int64(i + 1)
		s.categories[id] = &domain.Category{ID: id, Type: c}
	}
	return s
}

func (s *memStore) add(q *domain.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	q.ID = s.nextID
	s.questions[q.ID] = q
}

func (s *memStore) sorted(keep func(*domain.Question) bool) []*domain.Question {
	out := []*domain.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) PingContext(context.Context) error { return nil }

func (s *memStore) ListQuestions(context.Context) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(*domain.Question) bool { return true }), nil
}

func (s *memStore) ListQuestionsByCategory(_ context.Context, id int64) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(q *domain.Question) bool { return q.CategoryID == id }), nil
}

func (s *memStore) SearchQuestions(_ context.Context, term string) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	return s.sorted(func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	}), nil
}

func (s *memStore) GetQuestionByID(_ context.Context, id int64) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[id], nil
}

func (s *memStore) CreateQuestion(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	_, ok := s.categories[q.CategoryID]
	s.mu.Unlock()
	if !ok {
		return domain.ErrUnknownCategory
	}
	s.add(q)
	return nil
}

func (s *memStore) DeleteQuestion(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, id)
	return nil
}

func (s *memStore) ListCategories(context.Context) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories[id], nil
}

func (s *memStore) GetCategoryByType(_ context.Context, t string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Type == t {
			return c, nil
		}
	}
	return nil, nil
}

func (s *memStore) CreateCategory(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = int64(len(s.categories) + 1)
	s.categories[c.ID] = c
	return nil
}

// memDrinks is an in-memory drink store with a unique title.
type memDrinks struct {
	mu     sync.Mutex
	drinks map[int64]*domain.Drink
	nextID int64
}

func newMemDrinks() *memDrinks {
	return &memDrinks{drinks: map[int64]*domain.Drink{}}
}

func (s *memDrinks) titleTaken(title string, except int64) bool {
	for id, d := range s.drinks {
		if id != except && d.Title == title {
			return true
		}
	}
	return false
}

func (s *memDrinks) ListDrinks(context.Context) ([]*domain.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Drink{}
	for _, d := range s.drinks {
		c := *d
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memDrinks) GetDrinkByID(_ context.Context, id int64) (*domain.Drink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drinks[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (s *memDrinks) CreateDrink(_ context.Context, d *domain.Drink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.titleTaken(d.Title, 0) {
		return domain.ErrDuplicateDrinkTitle
	}
	s.nextID++
	d.ID = s.nextID
	c := *d
	s.drinks[d.ID] = &c
	return nil
}

func (s *memDrinks) UpdateDrink(_ context.Context, d *domain.Drink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.titleTaken(d.Title, d.ID) {
		return domain.ErrDuplicateDrinkTitle
	}
	c := *d
	s.drinks[d.ID] = &c
	return nil
}

func (s *memDrinks) DeleteDrink(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drinks, id)
	return nil
}

func (s *memDrinks) PingContext(context.Context) error { return nil }
