package stores

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

// StaffStore caches staff members and tracks who is operating the till.
type StaffStore struct {
	mu      sync.Mutex
	svc     *services.StaffService
	staff   []models.StaffMember
	current *models.StaffMember
	loading bool
	err     string
}

func NewStaffStore(svc *services.StaffService) *StaffStore {
	return &StaffStore{svc: svc}
}

func (s *StaffStore) Staff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StaffMember, len(s.staff))
	copy(out, s.staff)
	return out
}

func (s *StaffStore) CurrentStaff() *models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	current := *s.current
	return &current
}

func (s *StaffStore) SetCurrentStaff(member *models.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = member
}

func (s *StaffStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *StaffStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *StaffStore) Fetch(ctx context.Context) {
	s.begin()
	defer s.finish()

	staff, err := s.svc.GetStaff(ctx)
	if err != nil {
		s.fail("Failed to fetch staff", err)
		return
	}
	s.mu.Lock()
	s.staff = staff
	s.mu.Unlock()
}

func (s *StaffStore) Add(ctx context.Context, member models.StaffMember) (models.StaffMember, error) {
	s.begin()
	defer s.finish()

	created, err := s.svc.CreateStaff(ctx, member)
	if err != nil {
		s.fail("Failed to add staff member", err)
		return models.StaffMember{}, err
	}
	s.mu.Lock()
	s.staff = append(s.staff, created)
	s.mu.Unlock()
	return created, nil
}

func (s *StaffStore) Update(ctx context.Context, id uint, patch models.StaffPatch) (models.StaffMember, error) {
	s.begin()
	defer s.finish()

	updated, err := s.svc.UpdateStaff(ctx, id, patch)
	if err != nil {
		s.fail("Failed to update staff member", err)
		return models.StaffMember{}, err
	}
	s.mu.Lock()
	s.staff = lo.Map(s.staff, func(m models.StaffMember, _ int) models.StaffMember {
		if m.ID == id {
			return updated
		}
		return m
	})
	if s.current != nil && s.current.ID == id {
		s.current = &updated
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *StaffStore) Delete(ctx context.Context, id uint) error {
	s.begin()
	defer s.finish()

	if err := s.svc.DeleteStaff(ctx, id); err != nil {
		s.fail("Failed to delete staff member", err)
		return err
	}
	s.mu.Lock()
	s.staff = lo.Filter(s.staff, func(m models.StaffMember, _ int) bool { return m.ID != id })
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *StaffStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *StaffStore) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *StaffStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	utils.ErrorLogger.Printf("%s: %v", msg, err)
}
