package tutor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/config"
	"github.com/uvmlab/uvmlab/internal/logging"
)

const systemPrompt = `You are a patient verification-methodology tutor. You teach the UVM
testbench architecture: sequences, sequencers, drivers, interfaces, the
DUT, monitors, and scoreboards. Answer concisely. When an example helps,
include exactly one SystemVerilog snippet in a fenced code block.`

// OpenAIClient talks to an OpenAI-compatible chat completion API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    zerolog.Logger
}

// NewOpenAIClient constructs a client from tutor configuration.
func NewOpenAIClient(cfg config.TutorConfig) (*OpenAIClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("tutor API key is not configured (set tutor.api_key or OPENAI_API_KEY)")
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = config.DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = config.DefaultMaxTokens
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
		logger:    logging.Component("tutor"),
	}, nil
}

// Explain implements Client.
func (c *OpenAIClient) Explain(ctx context.Context, component arch.Component) (Answer, error) {
	prompt := fmt.Sprintf(
		"Explain the role of the %s in a UVM testbench, including how it connects to its neighbors.",
		component)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: c.maxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).Str("component", string(component)).Msg("explain request failed")
		return Answer{}, fmt.Errorf("tutor explain: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Answer{}, errors.New("tutor explain: empty response")
	}

	return ParseAnswer(resp.Choices[0].Message.Content), nil
}

// Chat implements Client.
func (c *OpenAIClient) Chat(ctx context.Context, history []Message, question string, component arch.Component) (*Stream, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: c.chatSystemPrompt(component),
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	req := openai.ChatCompletionRequest{
		Model:               c.model,
		Messages:            messages,
		MaxCompletionTokens: c.maxTokens,
		Stream:              true,
	}

	upstream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("chat request failed")
		return nil, fmt.Errorf("tutor chat: %w", err)
	}

	stream := newStream()
	go func() {
		defer upstream.Close()
		for {
			resp, err := upstream.Recv()
			if errors.Is(err, io.EOF) {
				stream.close(nil)
				return
			}
			if err != nil {
				c.logger.Warn().Err(err).Msg("chat stream ended with error")
				stream.close(err)
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			if !stream.send(ctx, resp.Choices[0].Delta.Content) {
				stream.close(ctx.Err())
				return
			}
		}
	}()

	return stream, nil
}

func (c *OpenAIClient) chatSystemPrompt(component arch.Component) string {
	if !component.Valid() {
		return systemPrompt
	}
	return fmt.Sprintf("%s\n\nThe student is currently looking at the %s.", systemPrompt, component)
}
