package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/service"
)

const identifyPrompt = `You are an expert philatelist. Identify the postage stamp in this image.
Reply with JSON only, using the keys name, year, country, description, rarity and estimated_value.
Use an empty string for anything you cannot determine. Rarity is one of common, uncommon, rare, very rare.`

var stampSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":            {Type: genai.TypeString},
		"year":            {Type: genai.TypeString},
		"country":         {Type: genai.TypeString},
		"description":     {Type: genai.TypeString},
		"rarity":          {Type: genai.TypeString},
		"estimated_value": {Type: genai.TypeString},
	},
	Required: []string{"name", "country"},
}

type StampIdentifier struct {
	client *genai.Client
	model  string
}

var _ service.StampIdentifier = (*StampIdentifier)(nil)

func NewStampIdentifier(ctx context.Context, apiKey, model string) (*StampIdentifier, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &StampIdentifier{client: client, model: model}, nil
}

func (s *StampIdentifier) Identify(ctx context.Context, image []byte, mimeType string) (*entity.StampIdentification, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(identifyPrompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   stampSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	return parseIdentification(result.Text())
}

func parseIdentification(text string) (*entity.StampIdentification, error) {
	text = cleanJSON(text)
	if text == "" {
		return nil, errors.New("gemini: empty response")
	}

	var out entity.StampIdentification
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &out, nil
}

func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
