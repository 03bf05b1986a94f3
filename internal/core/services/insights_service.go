package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
	"github.com/SscSPs/insightbud/internal/utils"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
)

// InsightsConfig tunes the response cache.
type InsightsConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type insightsService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
	budgetRepo  portsrepo.BudgetRepositoryFacade
	categorySvc portssvc.CategorySvc
	generator   portssvc.TextGenerator
	cache       *expirable.LRU[string, string]
	metrics     *metrics.Metrics
}

// NewInsightsService creates the AI insights service. A nil generator makes every flow use its fallback.
func NewInsightsService(
	expenseRepo portsrepo.ExpenseReader,
	budgetRepo portsrepo.BudgetRepositoryFacade,
	categorySvc portssvc.CategorySvc,
	generator portssvc.TextGenerator,
	cfg InsightsConfig,
	m *metrics.Metrics,
	clock Clock,
) portssvc.InsightsSvc {
	if m == nil {
		m = metrics.NewMetrics()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	return &insightsService{
		BaseService: BaseService{Clock: clock},
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		categorySvc: categorySvc,
		generator:   generator,
		cache:       expirable.NewLRU[string, string](size, nil, cfg.CacheTTL),
		metrics:     m,
	}
}

// generate calls the text generator, serving repeated prompts of cacheable flows from the cache.
func (s *insightsService) generate(ctx context.Context, p portssvc.Prompt, cacheable bool) (string, error) {
	if s.generator == nil {
		s.metrics.AIRequestsTotal.WithLabelValues(p.Flow, "disabled").Inc()
		return "", fmt.Errorf("%w: no text generator configured", apperrors.ErrAIGeneration)
	}

	key := promptKey(p)
	if cacheable {
		if out, ok := s.cache.Get(key); ok {
			s.metrics.AIRequestsTotal.WithLabelValues(p.Flow, "cache_hit").Inc()
			return out, nil
		}
	}

	start := time.Now()
	out, err := s.generator.Generate(ctx, p)
	s.metrics.AIDuration.WithLabelValues(p.Flow).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.AIRequestsTotal.WithLabelValues(p.Flow, "error").Inc()
		s.LogError(ctx, err, "Text generation failed", slog.String("flow", p.Flow))
		return "", fmt.Errorf("%w: %s: %w", apperrors.ErrAIGeneration, p.Flow, err)
	}

	s.metrics.AIRequestsTotal.WithLabelValues(p.Flow, "ok").Inc()
	if cacheable {
		s.cache.Add(key, out)
	}
	return out, nil
}

// fallback records that a flow answered without the model.
func (s *insightsService) fallback(flow string) {
	s.metrics.AIRequestsTotal.WithLabelValues(flow, "fallback").Inc()
}

func promptKey(p portssvc.Prompt) string {
	h := sha256.New()
	for _, part := range []string{p.System, p.User, p.ImageURL} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return p.Flow + ":" + hex.EncodeToString(h.Sum(nil))
}

func (s *insightsService) SpendingInsights(ctx context.Context, userID string) (*domain.SpendingInsights, error) {
	expenses, err := s.listExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(expenses) < MinExpensesForInsights {
		s.fallback(FlowSpendingInsights)
		return fallbackInsights(MsgNotEnoughExpenses), nil
	}

	categories, err := s.categorySvc.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	out, err := s.generate(ctx, portssvc.Prompt{
		Flow:   FlowSpendingInsights,
		System: fmt.Sprintf(spendingInsightsSystem, s.Now().Format("Mon Jan 02 2006")),
		User:   "## Expenses\n" + toJSON(promptExpenses(expenses, categoryNames(categories))) + "\n\n## Categories\n" + toJSON(promptCategories(categories)),
		JSON:   true,
	}, true)
	if err != nil {
		return fallbackInsights(MsgInsightsUnavailable), nil
	}

	var insights domain.SpendingInsights
	if err := json.Unmarshal([]byte(extractJSON(out)), &insights); err != nil {
		s.LogError(ctx, err, "Malformed spending insights response")
		s.fallback(FlowSpendingInsights)
		return fallbackInsights(MsgInsightsUnavailable), nil
	}
	if insights.CategoryInsights == nil {
		insights.CategoryInsights = []domain.CategoryInsight{}
	}
	if insights.SavingsRecommendations == nil {
		insights.SavingsRecommendations = []domain.SavingsRecommendation{}
	}
	return &insights, nil
}

func fallbackInsights(msg string) *domain.SpendingInsights {
	return &domain.SpendingInsights{
		PredictedNextMonthTotal: decimal.Zero,
		OverallInsight:          msg,
		CategoryInsights:        []domain.CategoryInsight{},
		SavingsRecommendations:  []domain.SavingsRecommendation{},
		Fallback:                true,
	}
}

// RecurringSuggestions returns ids of non-recurring expenses that look like repeating payments.
func (s *insightsService) RecurringSuggestions(ctx context.Context, userID string) ([]string, error) {
	expenses, err := s.listExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.IsRecurring {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) < MinExpensesForRecurring {
		s.fallback(FlowRecurring)
		return []string{}, nil
	}

	out, err := s.generate(ctx, portssvc.Prompt{
		Flow:   FlowRecurring,
		System: recurringSystem,
		User:   "## Expenses\n" + toJSON(promptExpenses(candidates, nil)),
		JSON:   true,
	}, true)
	if err != nil {
		return []string{}, nil
	}

	var parsed struct {
		RecurringExpenseIDs []string `json:"recurringExpenseIds"`
	}
	if err := json.Unmarshal([]byte(extractJSON(out)), &parsed); err != nil {
		s.LogError(ctx, err, "Malformed recurring expenses response")
		return []string{}, nil
	}

	known := make(map[string]struct{}, len(candidates))
	for _, e := range candidates {
		known[e.ExpenseID] = struct{}{}
	}
	ids := make([]string, 0, len(parsed.RecurringExpenseIDs))
	for _, id := range parsed.RecurringExpenseIDs {
		if _, ok := known[id]; ok && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *insightsService) Chat(ctx context.Context, userID, query string, history []domain.ChatMessage) (string, error) {
	expenses, err := s.listExpenses(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		s.fallback(FlowChat)
		return MsgChatNoData, nil
	}

	categories, err := s.categorySvc.ListCategories(ctx, userID)
	if err != nil {
		return "", err
	}
	budget := "No budget set."
	if b, err := s.budgetRepo.FindBudget(ctx, userID); err == nil {
		budget = utils.FormatAmount(b.Amount) + " per month"
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to load budget: %w", err)
	}

	var conversation strings.Builder
	if len(history) > 0 {
		conversation.WriteString("## Conversation so far\n")
		for _, m := range history {
			fmt.Fprintf(&conversation, "- %s: %s\n", m.Role, m.Content)
		}
		conversation.WriteString("\n")
	}
	conversation.WriteString("## Question\n")
	conversation.WriteString(query)

	out, err := s.generate(ctx, portssvc.Prompt{
		Flow: FlowChat,
		System: fmt.Sprintf(chatSystem,
			s.Now().Format(time.RFC3339),
			budget,
			toJSON(promptExpenses(expenses, categoryNames(categories))),
			toJSON(promptCategories(categories))),
		User: conversation.String(),
	}, false)
	if err != nil {
		return MsgChatFailed, nil
	}
	answer := strings.TrimSpace(out)
	if answer == "" {
		return MsgChatFailed, nil
	}
	return answer, nil
}

// ParseReceipt extracts a title, amount and date from a receipt photo given as a data URI.
func (s *insightsService) ParseReceipt(ctx context.Context, photoDataURI string) (*domain.ParsedReceipt, error) {
	if !strings.HasPrefix(photoDataURI, "data:image/") || !strings.Contains(photoDataURI, ";base64,") {
		return nil, fmt.Errorf("%w: photo must be a base64 image data URI", apperrors.ErrValidation)
	}

	out, err := s.generate(ctx, portssvc.Prompt{
		Flow:     FlowReceipt,
		System:   receiptSystem,
		User:     "Extract the expense from this receipt.",
		ImageURL: photoDataURI,
		JSON:     true,
	}, false)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Title  string          `json:"title"`
		Amount decimal.Decimal `json:"amount"`
		Date   string          `json:"date"`
	}
	if err := json.Unmarshal([]byte(extractJSON(out)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed receipt response: %w", apperrors.ErrAIGeneration, err)
	}

	now := s.Now()
	return &domain.ParsedReceipt{
		Title:  strings.TrimSpace(parsed.Title),
		Amount: parsed.Amount,
		Date:   parseReceiptDate(parsed.Date, now),
	}, nil
}

// parseReceiptDate accepts RFC 3339 or a plain date and falls back to now.
func parseReceiptDate(s string, now time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, now.Location()); err == nil {
		return t
	}
	return now
}

func (s *insightsService) GoalMessage(ctx context.Context, goalName string) string {
	out, err := s.generate(ctx, portssvc.Prompt{
		Flow:   FlowGoalMessage,
		System: goalMessageSystem,
		User:   "Goal: " + goalName,
	}, false)
	if msg := strings.TrimSpace(out); err == nil && msg != "" {
		return msg
	}
	s.fallback(FlowGoalMessage)
	return fmt.Sprintf(goalMessageFallback, goalName)
}

func (s *insightsService) StreakMessage(ctx context.Context, streak budgeting.StreakResult, hasContributions bool) string {
	if !hasContributions {
		s.fallback(FlowStreakMessage)
		return MsgNoStreakYet
	}
	out, err := s.generate(ctx, portssvc.Prompt{
		Flow:   FlowStreakMessage,
		System: streakSystem,
		User: fmt.Sprintf("Streak: %d months. Saved this month: %s.",
			streak.StreakMonths, utils.FormatAmount(streak.CurrentMonthSavings)),
	}, true)
	if msg := strings.TrimSpace(out); err == nil && msg != "" {
		return msg
	}
	s.fallback(FlowStreakMessage)
	return MsgStreakUnavailable
}

func (s *insightsService) listExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	if userID == "" {
		return nil, nil
	}
	expenses, err := s.expenseRepo.ListAllExpenses(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for insights")
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

type promptExpense struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	IsRecurring bool   `json:"isRecurring,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type promptCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func promptExpenses(expenses []domain.Expense, names map[string]string) []promptExpense {
	out := make([]promptExpense, len(expenses))
	for i, e := range expenses {
		category := e.CategoryID
		if name, ok := names[e.CategoryID]; ok {
			category = name
		}
		out[i] = promptExpense{
			ID:          e.ExpenseID,
			Title:       e.Title,
			Amount:      e.Amount.StringFixed(2),
			Date:        e.Date.Format(time.DateOnly),
			Category:    category,
			IsRecurring: e.IsRecurring,
			Notes:       e.Notes,
		}
	}
	return out
}

func promptCategories(categories []domain.Category) []promptCategory {
	out := make([]promptCategory, len(categories))
	for i, c := range categories {
		out[i] = promptCategory{ID: c.CategoryID, Name: c.Name}
	}
	return out
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// extractJSON trims prose and markdown fences around the outermost JSON object.
func extractJSON(s string) string {
	start := strings.IndexAny(s, "{[")
	end := strings.LastIndexAny(s, "}]")
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}
