package services

import (
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/platform/config"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
)

// Dependencies are the non-repository collaborators of the services.
type Dependencies struct {
	Generator portssvc.TextGenerator // nil disables AI calls
	Tracker   portssvc.EventTracker
	Metrics   *metrics.Metrics
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The returned WriteExecutor must be closed on shutdown to flush in-flight ledger writes.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) (*portssvc.ServiceContainer, *WriteExecutor) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewMetrics()
	}
	clock := NewClock(cfg.Location)

	executor := NewWriteExecutor(repos.GoalRepo, repos.ContributionRepo, repos.RolloverRepo, cfg.WriteTimeout, deps.Metrics)

	container := &portssvc.ServiceContainer{}
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, clock)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.ExpenseRepo, container.Category, clock)
	container.Insights = NewInsightsService(
		repos.ExpenseRepo,
		repos.BudgetRepo,
		container.Category,
		deps.Generator,
		InsightsConfig{CacheSize: cfg.LLM.CacheSize, CacheTTL: cfg.LLM.CacheTTL},
		deps.Metrics,
		clock,
	)
	container.Savings = NewSavingsService(repos.GoalRepo, repos.ContributionRepo, executor, container.Insights, deps.Tracker, deps.Metrics, clock)
	container.Rollover = NewRolloverService(repos, executor, container.Insights, deps.Tracker, deps.Metrics, clock)

	return container, executor
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExpenseSvcFacade  = (*expenseService)(nil)
	_ portssvc.CategorySvc       = (*categoryService)(nil)
	_ portssvc.BudgetSvc         = (*budgetService)(nil)
	_ portssvc.SavingsSvcFacade  = (*savingsService)(nil)
	_ portssvc.RolloverSvcFacade = (*rolloverService)(nil)
	_ portssvc.InsightsSvc       = (*insightsService)(nil)
)
