package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"restaurant-backend/models"
	"restaurant-backend/repositories"

	"github.com/redis/go-redis/v9"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

type MenuService struct {
	menuRepo *repositories.MenuRepository
	cache    *redis.Client
}

// NewMenuService accepts a nil cache client; caching is then skipped.
func NewMenuService(menuRepo *repositories.MenuRepository, cache *redis.Client) *MenuService {
	return &MenuService{menuRepo: menuRepo, cache: cache}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, menuCacheKey).Result()
		if err == nil {
			var items []models.MenuItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		} else if err != redis.Nil {
			log.Println("Menu cache read failed:", err)
		}
	}

	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, menuCacheKey, payload, menuCacheTTL).Err(); err != nil {
				log.Println("Menu cache write failed:", err)
			}
		}
	}

	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.menuRepo.FindByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if req.Price.IsNegative() {
		return nil, models.ValidationError{Field: "price", Message: "price must not be negative"}
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   available,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, models.ValidationError{Field: "price", Message: "price must not be negative"}
		}
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	if _, err := s.menuRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, menuCacheKey).Err(); err != nil {
		log.Println("Menu cache invalidation failed:", err)
	}
}
