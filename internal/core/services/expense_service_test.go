package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/core/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	now      time.Time
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo, fixedClock(suite.now))
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Title: "Rent", Amount: dec("15000"), Date: suite.now, CategoryID: "rent", IsRecurring: true}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.UserID == "u1" && e.Title == "Rent" && e.IsRecurring && e.ExpenseID != "" && e.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, "u1", req)

	suite.Require().NoError(err)
	suite.Equal("Rent", expense.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositive() {
	_, err := suite.service.CreateExpense(context.Background(), "u1", dto.CreateExpenseRequest{Title: "x", Amount: dec("0")})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsUnstorablePrecision() {
	_, err := suite.service.CreateExpense(context.Background(), "u1", dto.CreateExpenseRequest{Title: "x", Amount: dec("0.00004")})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(assert.AnError).Once()

	expense, err := suite.service.CreateExpense(ctx, "u1", dto.CreateExpenseRequest{Title: "x", Amount: dec("1")})

	suite.Nil(expense)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ExpenseServiceTestSuite) TestEmptyUserIsNoOp() {
	ctx := context.Background()

	expense, err := suite.service.CreateExpense(ctx, "", dto.CreateExpenseRequest{Title: "x", Amount: dec("1")})
	suite.NoError(err)
	suite.Nil(expense)

	_, err = suite.service.GetExpense(ctx, "", "e1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	page, err := suite.service.ListExpenses(ctx, "", dto.ListExpensesParams{})
	suite.NoError(err)
	suite.Empty(page.Expenses)

	suite.NoError(suite.service.DeleteExpense(ctx, "", "e1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_DefaultLimit() {
	ctx := context.Background()
	next := "token"
	suite.mockRepo.On("ListExpenses", ctx, "u1", 20, (*string)(nil)).
		Return([]domain.Expense{{ExpenseID: "e1", Amount: dec("5")}}, &next, nil).Once()

	page, err := suite.service.ListExpenses(ctx, "u1", dto.ListExpensesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(page.Expenses, 1)
	suite.Equal("e1", page.Expenses[0].ExpenseID)
	suite.Equal(&next, page.NextToken)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_MergesProvidedFields() {
	ctx := context.Background()
	title := "Groceries (weekly)"
	suite.mockRepo.On("FindExpenseByID", ctx, "u1", "e1").Return(&domain.Expense{
		ExpenseID: "e1", UserID: "u1", Title: "Groceries", Amount: dec("900"), CategoryID: "grocery",
	}, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Title == title && e.Amount.Equal(dec("900")) && e.CategoryID == "grocery" && e.UpdatedAt.Equal(suite.now)
	})).Return(nil).Once()

	expense, err := suite.service.UpdateExpense(ctx, "u1", "e1", dto.UpdateExpenseRequest{Title: &title})

	suite.Require().NoError(err)
	suite.Equal(title, expense.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindExpenseByID", ctx, "u1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateExpense(ctx, "u1", "missing", dto.UpdateExpenseRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestMarkRecurring() {
	ctx := context.Background()
	ids := []string{"e1", "e2"}
	suite.mockRepo.On("MarkExpensesRecurring", ctx, "u1", ids, suite.now).Return(int64(2), nil).Once()

	updated, err := suite.service.MarkRecurring(ctx, "u1", ids)

	suite.Require().NoError(err)
	suite.Equal(int64(2), updated)

	updated, err = suite.service.MarkRecurring(ctx, "u1", nil)
	suite.NoError(err)
	suite.Zero(updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
