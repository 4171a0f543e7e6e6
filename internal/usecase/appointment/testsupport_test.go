package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
	"github.com/psicoagenda/psico-scheduler/internal/domain/ledger"
	"github.com/psicoagenda/psico-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

// memRepo implementa Repository, UnitOfWork e ledger.Store em memória.
// txMu faz o papel do FOR UPDATE: uma transação por vez; erro de fn
// restaura o snapshot, reproduzindo o rollback.
type memRepo struct {
	txMu sync.Mutex
	mu   sync.Mutex

	nextApptID  uint
	nextEntryID uint

	providers    map[uint]models.Provider
	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	entries      []models.LedgerEntry
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextApptID:   1,
		nextEntryID:  1,
		providers:    make(map[uint]models.Provider),
		clients:      make(map[uint]models.Client),
		appointments: make(map[uint]models.Appointment),
	}
}

// -------- UnitOfWork --------

func (m *memRepo) InTx(
	_ context.Context,
	fn func(repo domain.Repository, points ledger.Store) error,
) error {

	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()
	if err := fn(m, m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

type memSnapshot struct {
	nextApptID  uint
	nextEntryID uint

	providers    map[uint]models.Provider
	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	entries      []models.LedgerEntry
}

func (m *memRepo) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := memSnapshot{
		nextApptID:   m.nextApptID,
		nextEntryID:  m.nextEntryID,
		providers:    make(map[uint]models.Provider, len(m.providers)),
		clients:      make(map[uint]models.Client, len(m.clients)),
		appointments: make(map[uint]models.Appointment, len(m.appointments)),
		entries:      append([]models.LedgerEntry(nil), m.entries...),
	}
	for id, p := range m.providers {
		snap.providers[id] = p
	}
	for id, c := range m.clients {
		snap.clients[id] = c
	}
	for id, a := range m.appointments {
		snap.appointments[id] = a
	}
	return snap
}

func (m *memRepo) restore(snap memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextApptID = snap.nextApptID
	m.nextEntryID = snap.nextEntryID
	m.providers = snap.providers
	m.clients = snap.clients
	m.appointments = snap.appointments
	m.entries = snap.entries
}

// -------- Repository --------

func (m *memRepo) GetProvider(_ context.Context, id uint) (*models.Provider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.providers[id]
	if !ok {
		return nil, errNotFound
	}
	return &p, nil
}

func (m *memRepo) LockProvider(ctx context.Context, id uint) (*models.Provider, error) {
	// txMu já serializa; aqui só resta resolver o registro
	return m.GetProvider(ctx, id)
}

func (m *memRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

func (m *memRepo) IncrementCompletedSessions(_ context.Context, clientID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[clientID]
	if !ok {
		return errNotFound
	}
	c.CompletedSessions++
	m.clients[clientID] = c
	return nil
}

func (m *memRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	return &a, nil
}

func (m *memRepo) LockAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	// txMu já serializa; aqui só resta reler o registro
	return m.GetAppointment(ctx, id)
}

func (m *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap.ID = m.nextApptID
	m.nextApptID++
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.appointments[ap.ID]; !ok {
		return errNotFound
	}
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *memRepo) ListActiveAround(
	_ context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ProviderID != providerID {
			continue
		}
		if a.Status == string(domain.StatusCancelled) {
			continue
		}
		if a.StartTime.Before(from) || !a.StartTime.Before(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) ListForPeriod(
	_ context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ProviderID != providerID {
			continue
		}
		if a.StartTime.Before(from) || !a.StartTime.Before(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) FindDueForReminder(
	_ context.Context,
	windowStart time.Time,
	windowEnd time.Time,
) ([]models.Appointment, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ReminderSent {
			continue
		}
		if a.Status != string(domain.StatusScheduled) &&
			a.Status != string(domain.StatusConfirmed) {
			continue
		}
		if a.StartTime.Before(windowStart) || !a.StartTime.Before(windowEnd) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) MarkReminderSent(_ context.Context, appointmentID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[appointmentID]
	if !ok {
		return errNotFound
	}
	a.ReminderSent = true
	m.appointments[appointmentID] = a
	return nil
}

// -------- ledger.Store --------

func (m *memRepo) AppendEntry(_ context.Context, entry *models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.ID = m.nextEntryID
	m.nextEntryID++
	m.entries = append(m.entries, *entry)

	c, ok := m.clients[entry.ClientID]
	if !ok {
		return errNotFound
	}
	c.Points += entry.Points
	m.clients[entry.ClientID] = c
	return nil
}

func (m *memRepo) SumPoints(_ context.Context, clientID uint) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sum := 0
	for _, e := range m.entries {
		if e.ClientID == clientID {
			sum += e.Points
		}
	}
	return sum, nil
}

func (m *memRepo) ListEntries(_ context.Context, clientID uint) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.LedgerEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].ClientID == clientID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

// -------- fixtures --------

func testRules() Rules {
	return Rules{
		GuardMinutes:    50,
		RewardThreshold: 10,
		ModifyLeadTime:  24 * time.Hour,
		DefaultDuration: 50,
	}
}

// seedRepo monta um profissional seg-sex 08:00-12:00/14:00-18:00 em UTC
// e um cliente ativo.
func seedRepo() *memRepo {
	repo := newMemRepo()

	repo.providers[1] = models.Provider{
		ID:       1,
		Name:     "Dra. Helena",
		Email:    "helena@psicoagenda.com",
		Timezone: "UTC",

		WorksMonday:    true,
		WorksTuesday:   true,
		WorksWednesday: true,
		WorksThursday:  true,
		WorksFriday:    true,

		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "14:00",
		AfternoonEnd:   "18:00",
	}

	repo.clients[1] = models.Client{
		ID:         1,
		ProviderID: 1,
		Name:       "Marcos",
		Phone:      "+55 11 98888-0001",
		Active:     true,
	}

	return repo
}

func utc(ts string) time.Time {
	v, err := time.Parse("2006-01-02 15:04", ts)
	if err != nil {
		panic(err)
	}
	return v
}
