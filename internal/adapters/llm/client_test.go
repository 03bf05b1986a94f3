package llm

import (
	"context"
	"errors"
	"testing"

	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	resp     *llms.ContentResponse
	err      error
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	for _, o := range options {
		o(&f.opts)
	}
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestClient_Generate(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "  {\"ok\":true}\n"}}}}
	client := NewWithModel(model, 0)

	out, err := client.Generate(context.Background(), portssvc.Prompt{
		Flow:     "receipt_parser",
		System:   "sys",
		User:     "user",
		ImageURL: "data:image/png;base64,AAAA",
		JSON:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
	require.Len(t, model.messages[1].Parts, 2)
	assert.Equal(t, llms.TextPart("user"), model.messages[1].Parts[0])
	assert.Equal(t, llms.ImageURLPart("data:image/png;base64,AAAA"), model.messages[1].Parts[1])
	assert.True(t, model.opts.JSONMode)
}

func TestClient_GenerateErrors(t *testing.T) {
	t.Run("model error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		client := NewWithModel(&fakeModel{err: boom}, 0)
		_, err := client.Generate(context.Background(), portssvc.Prompt{Flow: "finance_chat"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no choices", func(t *testing.T) {
		client := NewWithModel(&fakeModel{resp: &llms.ContentResponse{}}, 0)
		_, err := client.Generate(context.Background(), portssvc.Prompt{Flow: "finance_chat"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{Model: "m"}.Validate())
	assert.Error(t, Config{APIKey: "k"}.Validate())
	assert.NoError(t, Config{APIKey: "k", Model: "m"}.Validate())
}
