package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"cinemania/internal/data/entity"
	"cinemania/internal/data/repository"
	"cinemania/internal/event"

	"github.com/google/uuid"
)

// memStore is an in-memory catalog that enforces one ticket per screening
// the same way the tickets table does.
type memStore struct {
	mu         sync.Mutex
	cinemas    []entity.Cinema
	movies     map[uuid.UUID]entity.Movie
	screenings map[uuid.UUID]entity.Screening
	tickets    map[uuid.UUID]entity.Ticket
	failWith   error
}

func newMemStore() *memStore {
	return &memStore{
		movies:     map[uuid.UUID]entity.Movie{},
		screenings: map[uuid.UUID]entity.Screening{},
		tickets:    map[uuid.UUID]entity.Ticket{},
	}
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Cinema:    fakeCinemaRepo{m},
		Screening: fakeScreeningRepo{m},
		Ticket:    fakeTicketRepo{m},
	}
}

func (m *memStore) addCinema(name, city string) entity.Cinema {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := entity.Cinema{Base: entity.Base{ID: uuid.New()}, Name: name, City: city}
	m.cinemas = append(m.cinemas, c)
	return c
}

func (m *memStore) addMovie(title string, year int, runtime int16, poster string) entity.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv := entity.Movie{
		Base:        entity.Base{ID: uuid.New()},
		Title:       title,
		Runtime:     runtime,
		ReleaseDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		PosterPath:  poster,
	}
	m.movies[mv.ID] = mv
	return mv
}

func (m *memStore) addScreening(cinema entity.Cinema, movie entity.Movie, hour, minute int) entity.Screening {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := entity.Screening{
		Base:     entity.Base{ID: uuid.New()},
		ShowTime: entity.ClockTime(hour, minute),
		CinemaID: cinema.ID,
		MovieID:  movie.ID,
	}
	m.screenings[s.ID] = s
	return s
}

func (m *memStore) ticketCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickets)
}

func (m *memStore) cinemaByID(id uuid.UUID) entity.Cinema {
	for _, c := range m.cinemas {
		if c.ID == id {
			return c
		}
	}
	return entity.Cinema{}
}

type fakeCinemaRepo struct{ m *memStore }

func (r fakeCinemaRepo) FindCities(ctx context.Context) ([]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	seen := map[string]bool{}
	cities := []string{}
	for _, c := range r.m.cinemas {
		if !seen[c.City] {
			seen[c.City] = true
			cities = append(cities, c.City)
		}
	}
	sort.Strings(cities)
	return cities, nil
}

func (r fakeCinemaRepo) FindByCity(ctx context.Context, city string) ([]*entity.Cinema, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	cinemas := []*entity.Cinema{}
	for _, c := range r.m.cinemas {
		if c.City == city {
			cinemas = append(cinemas, &c)
		}
	}
	sort.Slice(cinemas, func(i, j int) bool { return cinemas[i].Name < cinemas[j].Name })
	return cinemas, nil
}

type fakeScreeningRepo struct{ m *memStore }

func (r fakeScreeningRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	s, ok := r.m.screenings[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r fakeScreeningRepo) FindByCinemaName(ctx context.Context, cinemaName string) ([]*entity.ScreeningListing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	listings := []*entity.ScreeningListing{}
	for _, s := range r.m.screenings {
		if r.m.cinemaByID(s.CinemaID).Name != cinemaName {
			continue
		}
		listings = append(listings, &entity.ScreeningListing{Screening: s, Movie: r.m.movies[s.MovieID]})
	}
	sort.Slice(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.ShowTime.Microseconds != b.ShowTime.Microseconds {
			return a.ShowTime.Microseconds < b.ShowTime.Microseconds
		}
		return a.Movie.Title < b.Movie.Title
	})
	return listings, nil
}

type fakeTicketRepo struct{ m *memStore }

func (r fakeTicketRepo) CreateIfAbsent(ctx context.Context, ticket *entity.Ticket) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return r.m.failWith
	}

	if _, ok := r.m.screenings[ticket.ScreeningID]; !ok {
		return repository.ErrMissingReference
	}
	for _, t := range r.m.tickets {
		if t.ScreeningID == ticket.ScreeningID {
			return repository.ErrDuplicate
		}
	}
	r.m.tickets[ticket.ID] = *ticket
	return nil
}

func (r fakeTicketRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TicketListing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	t, ok := r.m.tickets[id]
	if !ok {
		return nil, nil
	}
	return r.m.listing(t), nil
}

func (r fakeTicketRepo) FindAll(ctx context.Context) ([]*entity.TicketListing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return nil, r.m.failWith
	}

	listings := []*entity.TicketListing{}
	for _, t := range r.m.tickets {
		listings = append(listings, r.m.listing(t))
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].TimePurchased.Before(listings[j].TimePurchased)
	})
	return listings, nil
}

func (r fakeTicketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failWith != nil {
		return r.m.failWith
	}

	if _, ok := r.m.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.m.tickets, id)
	return nil
}

func (m *memStore) listing(t entity.Ticket) *entity.TicketListing {
	s := m.screenings[t.ScreeningID]
	return &entity.TicketListing{
		Ticket:   t,
		ShowTime: s.ShowTime,
		Movie:    m.movies[s.MovieID],
		Cinema:   m.cinemaByID(s.CinemaID),
	}
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.TicketEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, evt event.TicketEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

var errStoreDown = errors.New("dial tcp: connection refused")

// steppingClock returns a strictly increasing time on every call.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}
