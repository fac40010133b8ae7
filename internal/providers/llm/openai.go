package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prasadt1/photocoach/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI talks to the OpenAI API or any compatible endpoint via BaseURL.
type OpenAI struct {
	client     *openai.Client
	model      string
	embedModel openai.EmbeddingModel
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      cfg.Model,
		embedModel: openai.SmallEmbedding3,
	}
}

func (o *OpenAI) Describe(ctx context.Context, imagePath string, prompt string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", imageMIME(imagePath), base64.StdEncoding.EncodeToString(data))

	rsp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai vision request: %w", err)
	}

	return firstChoice(rsp)
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	rsp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai generate request: %w", err)
	}

	return firstChoice(rsp)
}

func (o *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	rsp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: o.embedModel,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed request: %w", err)
	}

	if len(rsp.Data) == 0 || len(rsp.Data[0].Embedding) == 0 {
		return nil, errors.New("empty embedding response")
	}
	return rsp.Data[0].Embedding, nil
}

func firstChoice(rsp openai.ChatCompletionResponse) (string, error) {
	if len(rsp.Choices) == 0 || rsp.Choices[0].Message.Content == "" {
		return "", errors.New("empty model response")
	}
	return rsp.Choices[0].Message.Content, nil
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
