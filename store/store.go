// Package store owns every in-memory collection of the application. It is the
// single writer: engines receive snapshots and return derived values or
// mutation sets, never touching shared state themselves.
package store

import (
	"errors"
	"sync"
	"time"

	"alphaflow-backend/models"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]models.User
	clients      map[uuid.UUID]models.Client
	services     map[uuid.UUID]models.Service
	products     map[uuid.UUID]models.Product
	appointments map[uuid.UUID]models.Appointment
	financials   []models.FinancialRecord
	config       models.SystemConfig
	mode         models.AppMode
}

func New(mode models.AppMode) *Store {
	s := &Store{
		users:        make(map[uuid.UUID]models.User),
		clients:      make(map[uuid.UUID]models.Client),
		services:     make(map[uuid.UUID]models.Service),
		products:     make(map[uuid.UUID]models.Product),
		appointments: make(map[uuid.UUID]models.Appointment),
		config:       models.SystemConfig{Name: "AlphaFlow"},
		mode:         mode,
	}
	s.seed()
	return s
}

// ── Users ────────────────────────────────────────────────────────────────────

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *Store) UserByID(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) UpdateUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *Store) TouchLastLogin(id uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.LastLogin = &at
		s.users[id] = u
	}
}

// ── Clients ──────────────────────────────────────────────────────────────────

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out
}

func (s *Store) ClientByID(id uuid.UUID) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}
	return c, nil
}

func (s *Store) AddClient(c models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID] = c
}

func (s *Store) UpdateClient(c models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.ID]; !ok {
		return ErrNotFound
	}
	s.clients[c.ID] = c
	return nil
}

// ── Services ─────────────────────────────────────────────────────────────────

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		out = append(out, sv)
	}
	return out
}

func (s *Store) ServiceByID(id uuid.UUID) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sv, ok := s.services[id]
	if !ok {
		return models.Service{}, ErrNotFound
	}
	return sv, nil
}

func (s *Store) AddService(sv models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[sv.ID] = sv
}

func (s *Store) UpdateService(sv models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[sv.ID]; !ok {
		return ErrNotFound
	}
	s.services[sv.ID] = sv
	return nil
}

func (s *Store) DeleteService(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return ErrNotFound
	}
	delete(s.services, id)
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

func (s *Store) ProductByID(id uuid.UUID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *Store) UpdateProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return ErrNotFound
	}
	s.products[p.ID] = p
	return nil
}

func (s *Store) DeleteProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// ── Appointments ─────────────────────────────────────────────────────────────

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	return out
}

func (s *Store) AppointmentByID(id uuid.UUID) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) AddAppointment(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID] = a
}

func (s *Store) UpdateAppointment(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[a.ID]; !ok {
		return ErrNotFound
	}
	s.appointments[a.ID] = a
	return nil
}

func (s *Store) DeleteAppointment(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

// ── Financial ledger ─────────────────────────────────────────────────────────

func (s *Store) FinancialRecords() []models.FinancialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FinancialRecord, len(s.financials))
	copy(out, s.financials)
	return out
}

// AddFinancialRecord appends to the ledger. Records have no update or delete
// path: the ledger is append-only.
func (s *Store) AddFinancialRecord(r models.FinancialRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.financials = append(s.financials, r)
}

// ── System config / mode ─────────────────────────────────────────────────────

func (s *Store) Config() models.SystemConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Store) SetConfig(cfg models.SystemConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

func (s *Store) Mode() models.AppMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches barbershop/clinic mode and resets the service catalog to
// that mode's seed list, mirroring how the catalog follows the mode at boot.
func (s *Store) SetMode(mode models.AppMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.services = make(map[uuid.UUID]models.Service)
	for _, sv := range seedServices(mode) {
		s.services[sv.ID] = sv
	}
}
