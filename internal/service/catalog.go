package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// CatalogService defines the interface for menu catalog operations.
type CatalogService interface {
	// AddItem appends a meal definition to the catalog.
	AddItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	// DeleteItem removes a catalog item. A missing id is a no-op. Schedule
	// entries and orders referencing the item are deliberately untouched.
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	// ListItems returns the catalog in insertion order.
	ListItems(ctx context.Context) ([]model.MenuItem, error)
	// FindItem returns an item by id, or nil when it does not exist.
	FindItem(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	// Seed populates an empty catalog with the default meals.
	Seed(ctx context.Context) error
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	repo repository.MenuItemsRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.MenuItemsRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

// AddItem appends a meal definition to the catalog.
func (s *CatalogServiceImpl) AddItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	return s.repo.Insert(ctx, &item)
}

// DeleteItem removes a catalog item; missing ids are a no-op.
func (s *CatalogServiceImpl) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

// ListItems returns the catalog in insertion order.
func (s *CatalogServiceImpl) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	return s.repo.List(ctx)
}

// FindItem returns an item by id, or nil when it does not exist.
func (s *CatalogServiceImpl) FindItem(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Seed populates an empty catalog with the default meals. A non-empty
// catalog is left as is.
func (s *CatalogServiceImpl) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range model.DefaultMenuItems {
		if _, err := s.repo.Insert(ctx, &item); err != nil {
			return err
		}
	}

	log.Info().Int("items", len(model.DefaultMenuItems)).Msg("Seeded default menu catalog")
	return nil
}
