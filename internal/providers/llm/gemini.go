package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/prasadt1/photocoach/internal/config"
	genaiopt "google.golang.org/api/option"
)

type Gemini struct {
	client      *genai.Client
	visionModel string
	coachModel  string
	embedModel  string
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig, ragCfg *config.RAGConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, genaiopt.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		client:      client,
		visionModel: cfg.VisionModel,
		coachModel:  cfg.CoachModel,
		embedModel:  ragCfg.EmbeddingModel,
	}, nil
}

func (g *Gemini) Describe(ctx context.Context, imagePath string, prompt string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	model := g.client.GenerativeModel(g.visionModel)
	rsp, err := model.GenerateContent(ctx,
		genai.ImageData(imageFormat(imagePath), data),
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision request: %w", err)
	}

	return flattenResponse(rsp)
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.coachModel)
	rsp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate request: %w", err)
	}

	return flattenResponse(rsp)
}

func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	model := g.client.EmbeddingModel(g.embedModel)
	rsp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed request: %w", err)
	}

	if rsp == nil || rsp.Embedding == nil || len(rsp.Embedding.Values) == 0 {
		return nil, errors.New("empty embedding response")
	}
	return rsp.Embedding.Values, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func flattenResponse(rsp *genai.GenerateContentResponse) (string, error) {
	if rsp == nil || len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", errors.New("model response had no text parts")
	}
	return b.String(), nil
}

func imageFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	default:
		return "jpeg"
	}
}
