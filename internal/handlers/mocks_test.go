package handlers_test

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExpensesResponse), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}
func (m *MockExpenseService) MarkRecurring(ctx context.Context, userID string, expenseIDs []string) (int64, error) {
	args := m.Called(ctx, userID, expenseIDs)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portssvc.CategorySvc = (*MockCategoryService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) SetBudget(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Budget, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) BudgetStatus(ctx context.Context, userID string) (*domain.BudgetStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetStatus), args.Error(1)
}

var _ portssvc.BudgetSvc = (*MockBudgetService)(nil)

// --- Mock SavingsService ---
type MockSavingsService struct {
	mock.Mock
}

func (m *MockSavingsService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}
func (m *MockSavingsService) GetGoal(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}
func (m *MockSavingsService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, goalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}
func (m *MockSavingsService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}
func (m *MockSavingsService) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsGoal), args.Error(1)
}
func (m *MockSavingsService) AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*dto.AddContributionResponse, error) {
	args := m.Called(ctx, userID, goalID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AddContributionResponse), args.Error(1)
}
func (m *MockSavingsService) ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}
func (m *MockSavingsService) Streak(ctx context.Context, userID string) (*domain.SavingsStreak, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsStreak), args.Error(1)
}
func (m *MockSavingsService) DriftReport(ctx context.Context, userID string) ([]domain.GoalDrift, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoalDrift), args.Error(1)
}

var _ portssvc.SavingsSvcFacade = (*MockSavingsService)(nil)

// --- Mock RolloverService ---
type MockRolloverService struct {
	mock.Mock
}

func (m *MockRolloverService) Surplus(ctx context.Context, userID string) ([]budgeting.SurplusMonth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]budgeting.SurplusMonth), args.Error(1)
}
func (m *MockRolloverService) MonthlyReport(ctx context.Context, userID string) ([]domain.MonthReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthReport), args.Error(1)
}
func (m *MockRolloverService) ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rollover), args.Error(1)
}
func (m *MockRolloverService) Watch(ctx context.Context, userID string) <-chan portssvc.SurplusUpdate {
	args := m.Called(ctx, userID)
	return args.Get(0).(chan portssvc.SurplusUpdate)
}
func (m *MockRolloverService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResponse), args.Error(1)
}

var _ portssvc.RolloverSvcFacade = (*MockRolloverService)(nil)

// --- Mock InsightsService ---
type MockInsightsService struct {
	mock.Mock
}

func (m *MockInsightsService) SpendingInsights(ctx context.Context, userID string) (*domain.SpendingInsights, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpendingInsights), args.Error(1)
}
func (m *MockInsightsService) RecurringSuggestions(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockInsightsService) Chat(ctx context.Context, userID, query string, history []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, userID, query, history)
	return args.String(0), args.Error(1)
}
func (m *MockInsightsService) ParseReceipt(ctx context.Context, photoDataURI string) (*domain.ParsedReceipt, error) {
	args := m.Called(ctx, photoDataURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedReceipt), args.Error(1)
}
func (m *MockInsightsService) GoalMessage(ctx context.Context, goalName string) string {
	return m.Called(ctx, goalName).String(0)
}
func (m *MockInsightsService) StreakMessage(ctx context.Context, streak budgeting.StreakResult, hasContributions bool) string {
	return m.Called(ctx, streak, hasContributions).String(0)
}

var _ portssvc.InsightsSvc = (*MockInsightsService)(nil)
