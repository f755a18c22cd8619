package service

import (
	"context"
	"fmt"

	"github.com/ruff27/banglaghar/internal/ai"
)

// GenerateDescription строит маркетинговое описание объявления через
// AI-провайдера.
func (s *Service) GenerateDescription(ctx context.Context, facts ai.ListingFacts) (string, error) {
	const op = "service/GenerateDescription"

	text, err := s.describer.Describe(ctx, facts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return text, nil
}
