package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type InsightsServiceTestSuite struct {
	suite.Suite
	now        time.Time
	expenses   *MockExpenseRepository
	budgets    *MockBudgetRepository
	categories *MockCategoryRepository
	generator  *MockGenerator
	service    portssvc.InsightsSvc
}

func (suite *InsightsServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.expenses = new(MockExpenseRepository)
	suite.budgets = new(MockBudgetRepository)
	suite.categories = new(MockCategoryRepository)
	suite.categories.On("ListCategories", mock.Anything, "u1").Return(domain.DefaultCategories, nil).Maybe()
	suite.generator = new(MockGenerator)
	suite.service = suite.newService(suite.generator)
}

func (suite *InsightsServiceTestSuite) newService(generator portssvc.TextGenerator) portssvc.InsightsSvc {
	return services.NewInsightsService(
		suite.expenses,
		suite.budgets,
		services.NewCategoryService(suite.categories),
		generator,
		services.InsightsConfig{CacheSize: 16, CacheTTL: time.Hour},
		nil,
		fixedClock(suite.now),
	)
}

func (suite *InsightsServiceTestSuite) history(n int) []domain.Expense {
	out := make([]domain.Expense, n)
	for i := range out {
		out[i] = domain.Expense{
			ExpenseID:  fmt.Sprintf("e%d", i+1),
			UserID:     "u1",
			Title:      "Netflix",
			Amount:     dec("649"),
			Date:       suite.now.AddDate(0, -i, 0),
			CategoryID: "entertainment",
		}
	}
	return out
}

func flow(name string) interface{} {
	return mock.MatchedBy(func(p portssvc.Prompt) bool { return p.Flow == name })
}

// --- Test Cases ---

func (suite *InsightsServiceTestSuite) TestSpendingInsights_NotEnoughExpenses() {
	suite.expenses.On("ListAllExpenses", mock.Anything, "u1").Return(suite.history(4), nil).Once()

	insights, err := suite.service.SpendingInsights(context.Background(), "u1")

	suite.Require().NoError(err)
	suite.True(insights.Fallback)
	suite.Equal(services.MsgNotEnoughExpenses, insights.OverallInsight)
	suite.True(insights.PredictedNextMonthTotal.IsZero())
	suite.NotNil(insights.CategoryInsights)
	suite.generator.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything)
}

func (suite *InsightsServiceTestSuite) TestSpendingInsights_ParsesFencedJSONAndCaches() {
	ctx := context.Background()
	suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(6), nil).Twice()
	reply := "Here you go:\n```json\n" +
		`{"predictedNextMonthTotal": 1200.5, "overallInsight": "Steady month.", "categoryInsights": [{"categoryName": "Entertainment", "prediction": 649, "insight": "Subscriptions dominate."}]}` +
		"\n```"
	suite.generator.On("Generate", ctx, mock.MatchedBy(func(p portssvc.Prompt) bool {
		return p.Flow == services.FlowSpendingInsights && p.JSON && strings.Contains(p.User, "Entertainment")
	})).Return(reply, nil).Once()

	first, err := suite.service.SpendingInsights(ctx, "u1")
	suite.Require().NoError(err)
	second, err := suite.service.SpendingInsights(ctx, "u1")
	suite.Require().NoError(err)

	suite.False(first.Fallback)
	suite.Equal("Steady month.", first.OverallInsight)
	suite.True(first.PredictedNextMonthTotal.Equal(dec("1200.5")))
	suite.Require().Len(first.CategoryInsights, 1)
	suite.Equal("Entertainment", first.CategoryInsights[0].CategoryName)
	suite.NotNil(first.SavingsRecommendations)
	suite.Equal(first, second)
	suite.generator.AssertNumberOfCalls(suite.T(), "Generate", 1)
}

func (suite *InsightsServiceTestSuite) TestSpendingInsights_GeneratorFailureFallsBack() {
	ctx := context.Background()
	suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(5), nil).Once()
	suite.generator.On("Generate", ctx, flow(services.FlowSpendingInsights)).Return("", assert.AnError).Once()

	insights, err := suite.service.SpendingInsights(ctx, "u1")

	suite.Require().NoError(err)
	suite.True(insights.Fallback)
	suite.Equal(services.MsgInsightsUnavailable, insights.OverallInsight)
}

func (suite *InsightsServiceTestSuite) TestSpendingInsights_WithoutGenerator() {
	ctx := context.Background()
	suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(5), nil).Once()

	insights, err := suite.newService(nil).SpendingInsights(ctx, "u1")

	suite.Require().NoError(err)
	suite.True(insights.Fallback)
	suite.Equal(services.MsgInsightsUnavailable, insights.OverallInsight)
}

func (suite *InsightsServiceTestSuite) TestSpendingInsights_EmptyUser() {
	insights, err := suite.service.SpendingInsights(context.Background(), "")

	suite.Require().NoError(err)
	suite.Equal(services.MsgNotEnoughExpenses, insights.OverallInsight)
	suite.expenses.AssertNotCalled(suite.T(), "ListAllExpenses", mock.Anything, mock.Anything)
}

func (suite *InsightsServiceTestSuite) TestRecurringSuggestions_FiltersUnknownIDs() {
	ctx := context.Background()
	expenses := suite.history(4)
	expenses[3].IsRecurring = true
	suite.expenses.On("ListAllExpenses", ctx, "u1").Return(expenses, nil).Once()
	suite.generator.On("Generate", ctx, mock.MatchedBy(func(p portssvc.Prompt) bool {
		return p.Flow == services.FlowRecurring && !strings.Contains(p.User, `"e4"`)
	})).Return(`{"recurringExpenseIds": ["e1", "e2", "e2", "e4", "made-up"]}`, nil).Once()

	ids, err := suite.service.RecurringSuggestions(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal([]string{"e1", "e2"}, ids)
}

func (suite *InsightsServiceTestSuite) TestRecurringSuggestions_TooFewCandidates() {
	ctx := context.Background()
	suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(2), nil).Once()

	ids, err := suite.service.RecurringSuggestions(ctx, "u1")

	suite.Require().NoError(err)
	suite.NotNil(ids)
	suite.Empty(ids)
}

func (suite *InsightsServiceTestSuite) TestChat() {
	ctx := context.Background()

	suite.Run("no expenses", func() {
		suite.expenses.On("ListAllExpenses", ctx, "u1").Return([]domain.Expense{}, nil).Once()
		answer, err := suite.service.Chat(ctx, "u1", "How much did I spend?", nil)
		suite.Require().NoError(err)
		suite.Equal(services.MsgChatNoData, answer)
	})

	suite.Run("answers with budget and history", func() {
		suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(2), nil).Once()
		suite.budgets.On("FindBudget", ctx, "u1").Return(&domain.Budget{Amount: dec("20000")}, nil).Once()
		history := []domain.ChatMessage{{Role: domain.RoleUser, Content: "Hi"}, {Role: domain.RoleAssistant, Content: "Hello!"}}
		suite.generator.On("Generate", ctx, mock.MatchedBy(func(p portssvc.Prompt) bool {
			return p.Flow == services.FlowChat &&
				strings.Contains(p.System, "per month") &&
				strings.Contains(p.User, "- assistant: Hello!") &&
				strings.HasSuffix(p.User, "Biggest category?")
		})).Return("  Entertainment, mostly Netflix.  ", nil).Once()

		answer, err := suite.service.Chat(ctx, "u1", "Biggest category?", history)
		suite.Require().NoError(err)
		suite.Equal("Entertainment, mostly Netflix.", answer)
	})

	suite.Run("generator failure", func() {
		suite.expenses.On("ListAllExpenses", ctx, "u1").Return(suite.history(1), nil).Once()
		suite.budgets.On("FindBudget", ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
		suite.generator.On("Generate", ctx, flow(services.FlowChat)).Return("", assert.AnError).Once()

		answer, err := suite.service.Chat(ctx, "u1", "Anything?", nil)
		suite.Require().NoError(err)
		suite.Equal(services.MsgChatFailed, answer)
	})
}

func (suite *InsightsServiceTestSuite) TestParseReceipt() {
	ctx := context.Background()
	photo := "data:image/jpeg;base64,/9j/4AAQ"

	suite.Run("rejects non data URI", func() {
		_, err := suite.service.ParseReceipt(ctx, "https://example.com/receipt.jpg")
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("parses plain date", func() {
		suite.generator.On("Generate", ctx, mock.MatchedBy(func(p portssvc.Prompt) bool {
			return p.Flow == services.FlowReceipt && p.ImageURL == photo
		})).Return(`{"title": " Cafe Coffee Day ", "amount": 249.5, "date": "2024-07-12"}`, nil).Once()

		receipt, err := suite.service.ParseReceipt(ctx, photo)
		suite.Require().NoError(err)
		suite.Equal("Cafe Coffee Day", receipt.Title)
		suite.True(receipt.Amount.Equal(dec("249.5")))
		suite.True(receipt.Date.Equal(time.Date(2024, time.July, 12, 0, 0, 0, 0, time.UTC)))
	})

	suite.Run("generation error", func() {
		suite.generator.On("Generate", ctx, flow(services.FlowReceipt)).Return("", assert.AnError).Once()

		_, err := suite.service.ParseReceipt(ctx, photo)
		suite.ErrorIs(err, apperrors.ErrAIGeneration)
	})

	suite.Run("malformed reply", func() {
		suite.generator.On("Generate", ctx, flow(services.FlowReceipt)).Return("no idea", nil).Once()

		_, err := suite.service.ParseReceipt(ctx, photo)
		suite.ErrorIs(err, apperrors.ErrAIGeneration)
	})
}

func (suite *InsightsServiceTestSuite) TestGoalMessage() {
	ctx := context.Background()
	suite.generator.On("Generate", ctx, flow(services.FlowGoalMessage)).Return("Goa here you come!", nil).Once()
	suite.Equal("Goa here you come!", suite.service.GoalMessage(ctx, "Goa trip"))

	suite.Equal("🎉 Congratulations on reaching your goal: Goa trip! 🎉", suite.newService(nil).GoalMessage(ctx, "Goa trip"))
}

func (suite *InsightsServiceTestSuite) TestStreakMessage() {
	ctx := context.Background()
	streak := budgeting.StreakResult{StreakMonths: 3, CurrentMonthSavings: dec("1500")}

	suite.Equal(services.MsgNoStreakYet, suite.service.StreakMessage(ctx, budgeting.StreakResult{}, false))

	suite.generator.On("Generate", ctx, mock.MatchedBy(func(p portssvc.Prompt) bool {
		return p.Flow == services.FlowStreakMessage && strings.Contains(p.User, "3 months")
	})).Return("Three months strong!", nil).Once()
	suite.Equal("Three months strong!", suite.service.StreakMessage(ctx, streak, true))

	suite.Equal(services.MsgStreakUnavailable, suite.newService(nil).StreakMessage(ctx, streak, true))
}

// --- Run Test Suite ---
func TestInsightsService(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}
