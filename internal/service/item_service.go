package service

import (
	"context"
	"errors"
	"fmt"

	"lostlinked/internal/model"
	"lostlinked/internal/repository"
)

var ErrItemNotFound = errors.New("item not found")

// ItemService defines operations for lost and found items
type ItemService interface {
	Create(ctx context.Context, kind model.Kind, item model.Item) (*model.Item, error)
	List(ctx context.Context, kind model.Kind) ([]model.Item, error)
	Delete(ctx context.Context, kind model.Kind, id int64) error
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// Create stores a new item. Status is always "active" on creation; the
// client has no say in it.
func (s *itemService) Create(ctx context.Context, kind model.Kind, item model.Item) (*model.Item, error) {
	item.Status = model.StatusActive
	if err := s.repo.Create(ctx, kind, &item); err != nil {
		return nil, fmt.Errorf("failed to create item in repo: %w", err)
	}
	return &item, nil
}

// List returns all items of the given kind, newest first
func (s *itemService) List(ctx context.Context, kind model.Kind) ([]model.Item, error) {
	items, err := s.repo.FindAll(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list items from repo: %w", err)
	}
	return items, nil
}

// Delete removes the item with the given id. Deleting an id that does
// not exist, including one already deleted, reports ErrItemNotFound.
func (s *itemService) Delete(ctx context.Context, kind model.Kind, id int64) error {
	deleted, err := s.repo.Delete(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete item in repo: %w", err)
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
