package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryWithTx
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryWithTx) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

// ListCategories returns the user's categories after seeding any missing defaults.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	if userID == "" {
		return []domain.Category{}, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	missing := missingDefaultCategories(categories, userID)
	if len(missing) == 0 {
		return categories, nil
	}

	if err := s.seed(ctx, missing); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories", slog.Int("missing", len(missing)))
		return nil, err
	}
	s.LogInfo(ctx, "Seeded default categories", slog.Int("count", len(missing)))

	categories, err = s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories after seeding: %w", err)
	}
	return categories, nil
}

func (s *categoryService) seed(ctx context.Context, categories []domain.Category) error {
	tx, err := s.categoryRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.categoryRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to rollback category seeding")
		}
	}()

	if err := s.categoryRepo.SaveCategoriesInTx(ctx, tx, categories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return s.categoryRepo.Commit(ctx, tx)
}

func missingDefaultCategories(existing []domain.Category, userID string) []domain.Category {
	have := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		have[c.CategoryID] = struct{}{}
	}
	var missing []domain.Category
	for _, c := range domain.DefaultCategories {
		if _, ok := have[c.CategoryID]; ok {
			continue
		}
		c.UserID = userID
		missing = append(missing, c)
	}
	return missing
}

// categoryNames maps category ids to names.
func categoryNames(categories []domain.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}
	return names
}
