package services

import (
	"context"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/models"
)

type TableService struct {
	api *client.Client
}

func NewTableService(api *client.Client) *TableService {
	return &TableService{api: api}
}

func (s *TableService) GetTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := s.api.Get(ctx, client.EndpointTables, &tables)
	return tables, err
}

func (s *TableService) CreateTable(ctx context.Context, table models.Table) (models.Table, error) {
	var created models.Table
	err := s.api.Post(ctx, client.EndpointTables, table, &created)
	return created, err
}

func (s *TableService) UpdateTable(ctx context.Context, id uint, patch models.TablePatch) (models.Table, error) {
	var updated models.Table
	err := s.api.Put(ctx, client.EndpointTable(id), patch, &updated)
	return updated, err
}

func (s *TableService) DeleteTable(ctx context.Context, id uint) error {
	return s.api.Delete(ctx, client.EndpointTable(id))
}
