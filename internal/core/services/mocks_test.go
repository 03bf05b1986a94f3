package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseRepository) ListExpenses(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return expenses, next, args.Error(2)
}
func (m *MockExpenseRepository) ListAllExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseRepository) ListExpensesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}
func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}
func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	return m.Called(ctx, userID, expenseID).Error(0)
}
func (m *MockExpenseRepository) MarkExpensesRecurring(ctx context.Context, userID string, expenseIDs []string, now time.Time) (int64, error) {
	args := m.Called(ctx, userID, expenseIDs, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryWithTx = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepository) SaveCategoriesInTx(ctx context.Context, tx pgx.Tx, categories []domain.Category) error {
	return m.Called(ctx, tx, categories).Error(0)
}
func (m *MockCategoryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}
func (m *MockCategoryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}
func (m *MockCategoryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) FindBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

// --- Mock SavingsGoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

var _ portsrepo.SavingsGoalRepositoryFacade = (*MockGoalRepository)(nil)

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	args := m.Called(ctx, userID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsGoal), args.Error(1)
}
func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsGoal), args.Error(1)
}
func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.SavingsGoal) error {
	return m.Called(ctx, goal).Error(0)
}
func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.SavingsGoal) error {
	return m.Called(ctx, goal).Error(0)
}
func (m *MockGoalRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return m.Called(ctx, userID, goalID).Error(0)
}
func (m *MockGoalRepository) IncrementGoalAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, goalID, delta, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ContributionRepository ---
type MockContributionRepository struct {
	mock.Mock
}

var _ portsrepo.ContributionRepositoryFacade = (*MockContributionRepository)(nil)

func (m *MockContributionRepository) SaveContribution(ctx context.Context, contribution domain.Contribution) error {
	return m.Called(ctx, contribution).Error(0)
}
func (m *MockContributionRepository) ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}
func (m *MockContributionRepository) SumContributionsByGoal(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock RolloverRepository ---
type MockRolloverRepository struct {
	mock.Mock
}

var _ portsrepo.RolloverRepositoryFacade = (*MockRolloverRepository)(nil)

func (m *MockRolloverRepository) SaveRollover(ctx context.Context, rollover domain.Rollover) error {
	return m.Called(ctx, rollover).Error(0)
}
func (m *MockRolloverRepository) ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rollover), args.Error(1)
}

// --- Mock TextGenerator ---
type MockGenerator struct {
	mock.Mock
}

var _ portssvc.TextGenerator = (*MockGenerator)(nil)

func (m *MockGenerator) Generate(ctx context.Context, prompt portssvc.Prompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- Mock InsightsService ---
type MockInsights struct {
	mock.Mock
}

var _ portssvc.InsightsSvc = (*MockInsights)(nil)

func (m *MockInsights) SpendingInsights(ctx context.Context, userID string) (*domain.SpendingInsights, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpendingInsights), args.Error(1)
}
func (m *MockInsights) RecurringSuggestions(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockInsights) Chat(ctx context.Context, userID, query string, history []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, userID, query, history)
	return args.String(0), args.Error(1)
}
func (m *MockInsights) ParseReceipt(ctx context.Context, photoDataURI string) (*domain.ParsedReceipt, error) {
	args := m.Called(ctx, photoDataURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedReceipt), args.Error(1)
}
func (m *MockInsights) GoalMessage(ctx context.Context, goalName string) string {
	return m.Called(ctx, goalName).String(0)
}
func (m *MockInsights) StreakMessage(ctx context.Context, streak budgeting.StreakResult, hasContributions bool) string {
	return m.Called(ctx, streak, hasContributions).String(0)
}

// --- Mock EventTracker ---
type MockTracker struct {
	mock.Mock
}

var _ portssvc.EventTracker = (*MockTracker)(nil)

func (m *MockTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// fakeNotifier hands out one channel per subscription and lets tests push changes.
type fakeNotifier struct {
	mu   sync.Mutex
	subs []chan domain.LedgerChange
}

var _ portsrepo.ChangeNotifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) Subscribe(userID string) (<-chan domain.LedgerChange, func()) {
	ch := make(chan domain.LedgerChange, 4)
	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			for i, s := range n.subs {
				if s == ch {
					n.subs = append(n.subs[:i], n.subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (n *fakeNotifier) publish(change domain.LedgerChange) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		ch <- change
	}
}

func (n *fakeNotifier) subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// fixedClock pins service time.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
