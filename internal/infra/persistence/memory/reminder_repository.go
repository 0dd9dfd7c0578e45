package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"medi/internal/domain/entity"
	"medi/internal/domain/repository"

	"github.com/google/uuid"
)

type reminderRepository struct {
	mu           sync.RWMutex
	entries      []*entity.ReminderEntry
	appointments []*entity.Appointment
}

// NewReminderRepository returns an in-memory reminder store pre-populated
// with the starter schedule. Entries list medications before hydration, each
// in insertion order, because the scheduler rings the first due match.
// Reads and writes exchange clones; the stored entries are only ever touched
// under the store lock.
func NewReminderRepository() repository.ReminderRepository {
	return &reminderRepository{
		entries:      seedEntries(),
		appointments: seedAppointments(),
	}
}

func seedEntries() []*entity.ReminderEntry {
	now := time.Now()
	entry := func(kind entity.ReminderKind, name, dosage, amount, timeOfDay string, completed bool) *entity.ReminderEntry {
		return &entity.ReminderEntry{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte("reminder:"+string(kind)+":"+name+amount+timeOfDay)),
			Kind:       kind,
			Name:       name,
			Dosage:     dosage,
			Amount:     amount,
			TimeOfDay:  timeOfDay,
			Recurrence: entity.DailyRecurrence(),
			Completed:  completed,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	return []*entity.ReminderEntry{
		entry(entity.ReminderKindMedication, "Lisinopril", "10mg", "", "08:00", true),
		entry(entity.ReminderKindMedication, "Metformin", "500mg", "", "20:00", false),
		entry(entity.ReminderKindHydration, "", "", "250ml", "09:00", true),
		entry(entity.ReminderKindHydration, "", "", "250ml", "11:00", false),
		entry(entity.ReminderKindHydration, "", "", "250ml", "13:00", false),
	}
}

func seedAppointments() []*entity.Appointment {
	return []*entity.Appointment{
		{
			ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte("appointment:Dr. Evelyn Reed")),
			Doctor:         "Dr. Evelyn Reed",
			Specialization: "Cardiology",
			Location:       "Heartbeat Clinic",
			DateTime:       time.Date(2024, time.August, 15, 10, 30, 0, 0, time.Local),
			CreatedAt:      time.Now(),
		},
	}
}

func (repo *reminderRepository) CreateEntry(_ context.Context, entry *entity.ReminderEntry) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.entries = append(repo.entries, entry.Clone())

	return nil
}

func (repo *reminderRepository) FindEntryByID(_ context.Context, id uuid.UUID) (*entity.ReminderEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, entry := range repo.entries {
		if entry.ID == id {
			return entry.Clone(), nil
		}
	}

	return nil, repository.ErrReminderEntryNotFound
}

func (repo *reminderRepository) ListEntries(_ context.Context) ([]*entity.ReminderEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	listed := make([]*entity.ReminderEntry, len(repo.entries))
	for i, entry := range repo.entries {
		listed[i] = entry.Clone()
	}

	// Medications first; insertion order within each kind.
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].Kind == entity.ReminderKindMedication && listed[j].Kind != entity.ReminderKindMedication
	})

	return listed, nil
}

func (repo *reminderRepository) UpdateEntry(_ context.Context, entry *entity.ReminderEntry) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, existing := range repo.entries {
		if existing.ID == entry.ID {
			repo.entries[i] = entry.Clone()

			return nil
		}
	}

	return repository.ErrReminderEntryNotFound
}

func (repo *reminderRepository) DeleteEntry(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, entry := range repo.entries {
		if entry.ID == id {
			repo.entries = append(repo.entries[:i], repo.entries[i+1:]...)

			return nil
		}
	}

	return repository.ErrReminderEntryNotFound
}

func (repo *reminderRepository) ResetCompleted(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, entry := range repo.entries {
		entry.Completed = false
	}

	return nil
}

func (repo *reminderRepository) CreateAppointment(_ context.Context, appointment *entity.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.appointments = append(repo.appointments, appointment)

	return nil
}

func (repo *reminderRepository) ListAppointments(_ context.Context) ([]*entity.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	listed := make([]*entity.Appointment, len(repo.appointments))
	copy(listed, repo.appointments)

	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].DateTime.Before(listed[j].DateTime)
	})

	return listed, nil
}

func (repo *reminderRepository) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i, appointment := range repo.appointments {
		if appointment.ID == id {
			repo.appointments = append(repo.appointments[:i], repo.appointments[i+1:]...)

			return nil
		}
	}

	return repository.ErrAppointmentNotFound
}
