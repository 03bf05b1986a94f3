package services

// Flow names label cache keys, metrics and prompts.
const (
	FlowSpendingInsights = "spending_insights"
	FlowRecurring        = "recurring_expenses"
	FlowChat             = "finance_chat"
	FlowReceipt          = "receipt_parser"
	FlowGoalMessage      = "goal_message"
	FlowStreakMessage    = "savings_streak"
)

// Canned answers used below data thresholds and when generation fails.
const (
	MsgNotEnoughExpenses   = "Start logging more expenses to unlock personalized spending predictions and insights!"
	MsgInsightsUnavailable = "We couldn't generate insights right now. Please try again later."
	MsgChatNoData          = "I don't have any of your expense data to analyze yet. Once you add some expenses, I can answer your questions!"
	MsgChatFailed          = "Sorry, I couldn't process that request."
	MsgNoStreakYet         = "Add some money to a savings goal to start your first streak!"
	MsgStreakUnavailable   = "Could not load savings analysis. Please try again later."
	goalMessageFallback    = "🎉 Congratulations on reaching your goal: %s! 🎉"
)

// Minimum history before an AI call is worth making.
const (
	MinExpensesForInsights  = 5
	MinExpensesForRecurring = 3
)

const spendingInsightsSystem = `You are a financial analyst helping a user budget better. Today is %s. The currency is Rupees (Rs.).
Using the expenses and categories provided:
1. Predict the total spend for next calendar month.
2. Summarise the user's spending in one or two encouraging sentences.
3. For the top 3-4 categories by spend, predict next month's spend and give one short insight each.
4. Give 1-2 savings recommendations: pick a high-spend category, suggest a realistic 10-15%% cut and state the monthly and yearly saving.
Be realistic and non-judgmental.
Respond with a JSON object of this shape:
{"predictedNextMonthTotal": number, "overallInsight": string, "categoryInsights": [{"categoryName": string, "prediction": number, "insight": string}], "savingsRecommendations": [{"recommendation": string}]}`

const recurringSystem = `You find recurring payments (subscriptions, rent, utilities, regular bills) in transaction data.
Look for expenses with similar titles and amounts that repeat at monthly or yearly intervals.
Respond with a JSON object {"recurringExpenseIds": [string]} listing only the ids of expenses that belong to a recurring pattern.`

const chatSystem = `You are InsightBud, a friendly financial assistant. Today is %s. The currency is Rupees (Rs.).
Answer the user's question using only the budget, expenses and categories below and the conversation so far.
If the data is insufficient, say so. Never invent figures. Be conversational and concise.

## Budget
%s

## Expenses
%s

## Categories
%s`

const receiptSystem = `You read receipts. From the image extract a short title (usually the merchant name), the total amount and the transaction date.
Respond with a JSON object {"title": string, "amount": number, "date": string} where date is ISO 8601.`

const goalMessageSystem = `You are a cheerful financial assistant. The user just completed a savings goal.
Write one short, exciting congratulation that mentions what they saved for. Reply with the message only.`

const streakSystem = `You are a fun, motivating savings coach. Write one short encouraging message about the user's savings streak.
A streak of 0 with nothing saved this month should gently encourage a start. A streak of 1 is a new streak.
Call 3 or more months a solid streak, 6 or more an amazing streak where habits are forming, and celebrate 12 as a one-year milestone.
Mention this month's savings in Rupees (Rs.) when above zero. Reply with the message only.`
