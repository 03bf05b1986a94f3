package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCategories_SeedsMissingDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	svc := services.NewCategoryService(repo)

	existing := []domain.Category{{CategoryID: "food", UserID: "u1", Name: "Food & Dining"}}
	repo.On("ListCategories", ctx, "u1").Return(existing, nil).Once()
	repo.On("Begin", ctx).Return(nil, nil).Once()
	repo.On("SaveCategoriesInTx", ctx, mock.Anything, mock.MatchedBy(func(cs []domain.Category) bool {
		if len(cs) != len(domain.DefaultCategories)-1 {
			return false
		}
		for _, c := range cs {
			if c.CategoryID == "food" || c.UserID != "u1" {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	repo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	repo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	repo.On("ListCategories", ctx, "u1").Return(domain.DefaultCategories, nil).Once()

	categories, err := svc.ListCategories(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, categories, len(domain.DefaultCategories))
	repo.AssertExpectations(t)
}

func TestListCategories_NothingToSeed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	svc := services.NewCategoryService(repo)
	repo.On("ListCategories", ctx, "u1").Return(domain.DefaultCategories, nil).Once()

	categories, err := svc.ListCategories(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, categories, len(domain.DefaultCategories))
	repo.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestListCategories_SeedFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	svc := services.NewCategoryService(repo)
	repo.On("ListCategories", ctx, "u1").Return([]domain.Category{}, nil).Once()
	repo.On("Begin", ctx).Return(nil, nil).Once()
	repo.On("SaveCategoriesInTx", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()
	repo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.ListCategories(ctx, "u1")

	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestListCategories_EmptyUser(t *testing.T) {
	repo := new(MockCategoryRepository)
	categories, err := services.NewCategoryService(repo).ListCategories(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, categories)
}
