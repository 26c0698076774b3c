package services

import (
	"context"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type StaffService struct {
	api *client.Client
}

func NewStaffService(api *client.Client) *StaffService {
	return &StaffService{api: api}
}

func (s *StaffService) GetStaff(ctx context.Context) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := s.api.Get(ctx, client.EndpointStaff, &staff)
	return staff, err
}

func (s *StaffService) CreateStaff(ctx context.Context, member models.StaffMember) (models.StaffMember, error) {
	var created models.StaffMember
	err := s.api.Post(ctx, client.EndpointStaff, member, &created)
	return created, err
}

func (s *StaffService) UpdateStaff(ctx context.Context, id uint, patch models.StaffPatch) (models.StaffMember, error) {
	var updated models.StaffMember
	err := s.api.Put(ctx, client.EndpointStaffMember(id), patch, &updated)
	return updated, err
}

func (s *StaffService) DeleteStaff(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, client.EndpointStaffMember(id))
}
