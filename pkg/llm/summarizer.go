package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/habrdigest/habrdigest/pkg/config"
)

// Summarizer produces short article summaries via an OpenAI-compatible API
type Summarizer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewSummarizer creates a new LLM summarizer
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for article summarization, digests go out in Russian
const defaultSystemPrompt = `Ты помощник, который создает краткие резюме статей с Хабра.
Создай краткое резюме статьи (2-3 предложения), выделив основные моменты и выводы.
Пиши сразу о содержании статьи, без вводных фраз вроде "В статье рассматривается" или "Автор описывает".
Резюме должно быть на русском языке.`

// Summarize returns a 2-3 sentence summary for the article. Content is
// truncated before sending, full article bodies blow the token budget.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (string, error) {
	if title == "" && content == "" {
		return "", fmt.Errorf("nothing to summarize")
	}

	limit := s.config.ContentLimit
	if limit <= 0 {
		limit = 3000
	}
	if len(content) > limit {
		// back up to a rune boundary, cyrillic text must not be cut mid-rune
		cut := limit
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	prompt := fmt.Sprintf("Заголовок: %s\n\nТекст статьи:\n%s", title, content)

	reqCtx := ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("llm returned empty summary")
	}
	return summary, nil
}
