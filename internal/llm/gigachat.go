package llm

import (
	"context"
	"fmt"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"

	"scent-matcher/pkg/config"
)

const gigaChatSystemInstruction = `You are a fragrance consultant. Always answer with a single valid JSON object, without markdown fences and without commentary before or after it.`

// GigaChatClient adapts the GigaChat SDK to the Client seam.
type GigaChatClient struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewGigaChatClient(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatClient, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = gigaChatSystemInstruction
	model.Temperature = 0.7

	return &GigaChatClient{client: client, model: model, logger: logger}, nil
}

func (c *GigaChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *GigaChatClient) Close() error {
	if c.client != nil {
		c.client.Close()
	}
	return nil
}
