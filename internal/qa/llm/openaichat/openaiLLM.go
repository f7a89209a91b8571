package openaichat

import (
	"context"
	"errors"
	"sync"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/customHttpClient"
	"github.com/akolanti/FinDocAPI/internal/qa/llm"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// llmClient speaks the OpenAI chat completion protocol. With the base URL
// pointed at an Ollama instance (/v1) the same client serves local models.
type llmClient struct {
	client    openai.Client
	modelName string
}

var (
	logger       *logger_i.Logger
	openaiClient *llmClient
	once         sync.Once
)

func GetOpenAIClient(baseURL string, apiKey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")

		opts := []option.RequestOption{
			option.WithHTTPClient(customHttpClient.PooledClient()),
			option.WithBaseURL(baseURL),
		}
		if apiKey != "" {
			opts = append(opts, option.WithAPIKey(apiKey))
		}

		openaiClient = &llmClient{
			client:    openai.NewClient(opts...),
			modelName: modelName,
		}
		logger.Info("OpenAI-compatible client created", "baseURL", baseURL, "model", modelName)
	})
	return openaiClient
}

func (c *llmClient) Name() string {
	return config.LLMProviderOpenAI
}

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(config.ModelSystemInstruction),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		logger.Error("Chat completion failed", "error", err)
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return completion.Choices[0].Message.Content, nil
}
