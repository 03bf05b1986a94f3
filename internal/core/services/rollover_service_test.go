package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/core/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type RolloverServiceTestSuite struct {
	suite.Suite
	now           time.Time
	expenses      *MockExpenseRepository
	budgets       *MockBudgetRepository
	goals         *MockGoalRepository
	contributions *MockContributionRepository
	rollovers     *MockRolloverRepository
	insights      *MockInsights
	tracker       *MockTracker
	notifier      *fakeNotifier
	executor      *services.WriteExecutor
	service       portssvc.RolloverSvcFacade
}

func (suite *RolloverServiceTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	suite.expenses = new(MockExpenseRepository)
	suite.budgets = new(MockBudgetRepository)
	suite.goals = new(MockGoalRepository)
	suite.contributions = new(MockContributionRepository)
	suite.rollovers = new(MockRolloverRepository)
	suite.insights = new(MockInsights)
	suite.tracker = new(MockTracker)
	suite.notifier = &fakeNotifier{}

	repos := portsrepo.RepositoryProvider{
		ExpenseRepo:      suite.expenses,
		BudgetRepo:       suite.budgets,
		GoalRepo:         suite.goals,
		ContributionRepo: suite.contributions,
		RolloverRepo:     suite.rollovers,
		Notifier:         suite.notifier,
	}
	suite.executor = services.NewWriteExecutor(suite.goals, suite.contributions, suite.rollovers, time.Second, nil)
	suite.service = services.NewRolloverService(repos, suite.executor, suite.insights, suite.tracker, nil, fixedClock(suite.now))
}

func (suite *RolloverServiceTestSuite) TearDownTest() {
	suite.executor.Close()
}

// ledger stubs June 2024: budget 1000, spent 600, 150 already transferred, so 250 remains.
func (suite *RolloverServiceTestSuite) ledger() {
	suite.budgets.On("FindBudget", mock.Anything, "u1").
		Return(&domain.Budget{Amount: dec("1000"), CreatedAt: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}, nil)
	suite.expenses.On("ListAllExpenses", mock.Anything, "u1").Return([]domain.Expense{
		{ExpenseID: "e1", UserID: "u1", Amount: dec("600"), Date: time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)},
	}, nil)
	suite.rollovers.On("ListRollovers", mock.Anything, "u1").Return([]domain.Rollover{
		{RolloverID: "r0", UserID: "u1", Month: "2024-06", TransferredAmount: dec("150"), TransferredToGoalID: "g0"},
	}, nil)
}

func (suite *RolloverServiceTestSuite) expectWrites(saveErr error) {
	suite.rollovers.On("SaveRollover", mock.Anything, mock.MatchedBy(func(r domain.Rollover) bool {
		return r.Month == "2024-06" && r.TransferredAmount.Equal(dec("100"))
	})).Return(saveErr).Once()
	suite.contributions.On("SaveContribution", mock.Anything, mock.MatchedBy(func(c domain.Contribution) bool {
		return c.Source == domain.SourceRollover && c.Amount.Equal(dec("100"))
	})).Return(saveErr).Once()
	suite.goals.On("IncrementGoalAmount", mock.Anything, "u1", "g1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("100"))
	}), mock.Anything).Return(dec("2000"), saveErr).Once()
}

// --- Test Cases ---

func (suite *RolloverServiceTestSuite) TestSurplus_SubtractsRollovers() {
	suite.ledger()

	months, err := suite.service.Surplus(context.Background(), "u1")

	suite.Require().NoError(err)
	suite.Require().Len(months, 1)
	suite.Equal(domain.MonthKey("2024-06"), months[0].Month)
	suite.True(months[0].Surplus.Equal(dec("250")))
}

func (suite *RolloverServiceTestSuite) TestSurplus_EmptyUser() {
	months, err := suite.service.Surplus(context.Background(), "")
	suite.NoError(err)
	suite.Empty(months)
	suite.expenses.AssertNotCalled(suite.T(), "ListAllExpenses", mock.Anything, mock.Anything)
}

func (suite *RolloverServiceTestSuite) TestMonthlyReport() {
	suite.ledger()

	report, err := suite.service.MonthlyReport(context.Background(), "u1")

	suite.Require().NoError(err)
	suite.Require().Len(report, 1)
	suite.True(report[0].TotalSpent.Equal(dec("600")))
	suite.True(report[0].Surplus.Equal(dec("400")))
	suite.True(report[0].Transferred.Equal(dec("150")))
}

func (suite *RolloverServiceTestSuite) TestTransfer_CompletesGoal() {
	suite.ledger()
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "g1").Return(&domain.SavingsGoal{
		GoalID: "g1", UserID: "u1", Name: "Trip", TargetAmount: dec("2000"), CurrentAmount: dec("1900"),
	}, nil).Once()
	suite.expectWrites(nil)
	suite.insights.On("GoalMessage", mock.Anything, "Trip").Return("You made it!").Once()
	suite.tracker.On("Enqueue", "u1", services.EventGoalAccomplished, mock.Anything).Once()

	resp, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "g1", Wait: true})

	suite.Require().NoError(err)
	suite.True(resp.TransferAmount.Equal(dec("100")))
	suite.True(resp.Completed)
	suite.True(resp.Goal.Accomplished)
	suite.Equal(dto.TransferApplied, resp.Status)
	suite.Equal("You made it!", resp.Message)
	suite.rollovers.AssertExpectations(suite.T())
	suite.contributions.AssertExpectations(suite.T())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RolloverServiceTestSuite) TestTransfer_WithoutWaitIsPending() {
	suite.ledger()
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "g1").Return(&domain.SavingsGoal{
		GoalID: "g1", UserID: "u1", Name: "Car", TargetAmount: dec("5000"), CurrentAmount: dec("1900"),
	}, nil).Once()
	suite.rollovers.On("SaveRollover", mock.Anything, mock.Anything).Return(nil).Once()
	suite.contributions.On("SaveContribution", mock.Anything, mock.Anything).Return(nil).Once()
	suite.goals.On("IncrementGoalAmount", mock.Anything, "u1", "g1", mock.Anything, mock.Anything).Return(dec("2150"), nil).Once()

	resp, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "g1"})

	suite.Require().NoError(err)
	suite.Equal(dto.TransferPending, resp.Status)
	suite.True(resp.TransferAmount.Equal(dec("250")))
	suite.False(resp.Completed)

	suite.executor.Close()
	suite.goals.AssertExpectations(suite.T())
	suite.insights.AssertNotCalled(suite.T(), "GoalMessage", mock.Anything, mock.Anything)
}

func (suite *RolloverServiceTestSuite) TestTransfer_RejectedOnceExecutorClosed() {
	suite.executor.Close()

	resp, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "g1"})

	suite.Nil(resp)
	suite.ErrorIs(err, services.ErrExecutorClosed)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.goals.AssertNotCalled(suite.T(), "FindGoalByID", mock.Anything, mock.Anything, mock.Anything)
	suite.rollovers.AssertNotCalled(suite.T(), "SaveRollover", mock.Anything, mock.Anything)
}

func (suite *RolloverServiceTestSuite) TestTransfer_AccomplishedGoalRejected() {
	suite.ledger()
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "g1").Return(&domain.SavingsGoal{
		GoalID: "g1", UserID: "u1", TargetAmount: dec("100"), CurrentAmount: dec("100"),
	}, nil).Once()

	resp, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "g1", Wait: true})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidTransfer)
	suite.rollovers.AssertNotCalled(suite.T(), "SaveRollover", mock.Anything, mock.Anything)
}

func (suite *RolloverServiceTestSuite) TestTransfer_MonthWithoutSurplusRejected() {
	suite.ledger()
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "g1").Return(&domain.SavingsGoal{
		GoalID: "g1", UserID: "u1", TargetAmount: dec("100"), CurrentAmount: dec("0"),
	}, nil).Once()

	_, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-05", GoalID: "g1", Wait: true})

	suite.ErrorIs(err, apperrors.ErrInvalidTransfer)
}

func (suite *RolloverServiceTestSuite) TestTransfer_BadMonth() {
	_, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "June", GoalID: "g1"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RolloverServiceTestSuite) TestTransfer_GoalNotFound() {
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "nope"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RolloverServiceTestSuite) TestTransfer_NothingStoredFailsWhenWaiting() {
	suite.ledger()
	suite.goals.On("FindGoalByID", mock.Anything, "u1", "g1").Return(&domain.SavingsGoal{
		GoalID: "g1", UserID: "u1", Name: "Trip", TargetAmount: dec("2000"), CurrentAmount: dec("1900"),
	}, nil).Once()
	suite.expectWrites(assert.AnError)

	resp, err := suite.service.Transfer(context.Background(), "u1", dto.TransferRequest{Month: "2024-06", GoalID: "g1", Wait: true})

	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
	suite.insights.AssertNotCalled(suite.T(), "GoalMessage", mock.Anything, mock.Anything)
}

func (suite *RolloverServiceTestSuite) TestWatch_ReemitsOnRelevantChanges() {
	suite.ledger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := suite.service.Watch(ctx, "u1")

	first := suite.next(updates)
	suite.Require().NoError(first.Err)
	suite.Require().Len(first.Months, 1)
	suite.Equal(1, suite.notifier.subscribers())

	suite.notifier.publish(domain.LedgerChange{UserID: "u1", Collection: domain.CollectionSavingsGoals})
	suite.notifier.publish(domain.LedgerChange{UserID: "u1", Collection: domain.CollectionExpenses})

	second := suite.next(updates)
	suite.NoError(second.Err)
	suite.expenses.AssertNumberOfCalls(suite.T(), "ListAllExpenses", 2)

	cancel()
	for range updates {
	}
	suite.Equal(0, suite.notifier.subscribers())
}

func (suite *RolloverServiceTestSuite) TestWatch_EmptyUserEmitsOnce() {
	updates := suite.service.Watch(context.Background(), "")

	first := suite.next(updates)
	suite.Empty(first.Months)
	_, open := <-updates
	suite.False(open)
}

func (suite *RolloverServiceTestSuite) next(ch <-chan portssvc.SurplusUpdate) portssvc.SurplusUpdate {
	select {
	case u, ok := <-ch:
		suite.Require().True(ok, "update channel closed")
		return u
	case <-time.After(2 * time.Second):
		suite.FailNow("no surplus update")
		return portssvc.SurplusUpdate{}
	}
}

// --- Run Test Suite ---
func TestRolloverService(t *testing.T) {
	suite.Run(t, new(RolloverServiceTestSuite))
}
