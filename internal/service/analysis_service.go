package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/phrazzld/gist-api/internal/domain"
	"github.com/phrazzld/gist-api/internal/generation"
)

// ProviderTier is one configured (source, model, client) triple in the
// fixed fallback sequence. The sequence is wired at startup and never
// derived at request time.
type ProviderTier struct {
	// Source is the observability tag recorded on results this tier produces.
	Source domain.Source

	// Model is the model name this tier calls.
	Model string

	// Generator is the client used for the attempt.
	Generator generation.Generator
}

// AnalysisService orchestrates content generation across provider tiers.
type AnalysisService interface {
	// Summarize runs the text fallback sequence for the request. It returns
	// the first successful result, or an error wrapping
	// generation.ErrGenerationFailed when every tier failed.
	Summarize(ctx context.Context, req *domain.SummarizeRequest) (*domain.GenerationResult, error)

	// DescribeImage runs the image fallback sequence. Exhaustion is not an
	// error: the returned result then carries the sentinel unavailable text.
	DescribeImage(ctx context.Context, req *domain.ImageRequest) (*domain.GenerationResult, error)
}

// analysisService is the concrete orchestrator. Each request is processed
// by one sequential control flow: a later tier is never attempted before
// the earlier one has definitively returned.
type analysisService struct {
	logger     *slog.Logger
	textTiers  []ProviderTier
	imageTiers []ProviderTier
}

// NewAnalysisService creates the orchestrator over the given tier
// sequences. The text sequence must not be empty; the image sequence may
// be, in which case every image request yields the sentinel result.
func NewAnalysisService(
	logger *slog.Logger,
	textTiers []ProviderTier,
	imageTiers []ProviderTier,
) (AnalysisService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if len(textTiers) == 0 {
		return nil, errors.New("at least one text provider tier is required")
	}

	for _, tier := range append(append([]ProviderTier{}, textTiers...), imageTiers...) {
		if tier.Generator == nil {
			return nil, fmt.Errorf("tier %s has no generator", tier.Source)
		}
		if tier.Model == "" {
			return nil, fmt.Errorf("tier %s has no model name", tier.Source)
		}
	}

	return &analysisService{
		logger:     logger,
		textTiers:  textTiers,
		imageTiers: imageTiers,
	}, nil
}

// Summarize builds the summary prompt and walks the text tiers in order.
func (s *analysisService) Summarize(
	ctx context.Context,
	req *domain.SummarizeRequest,
) (*domain.GenerationResult, error) {
	prompt := generation.BuildSummaryPrompt(req.Content, req.Options)
	log := s.logger.With(
		"request_id", uuid.New().String(),
		"mode", domain.ModeSummarize,
	)

	text, tier, attemptErrs := s.tryTiers(ctx, log, s.textTiers, prompt, nil)
	if text != "" {
		return domain.NewGenerationResult(text, tier.Source, tier.Model, domain.ModeSummarize, req.Options)
	}

	// Exhaustion is fatal for summarization. The message names the last
	// attempted tier; the wrapped multierror preserves every cause.
	last := s.textTiers[len(s.textTiers)-1]
	log.Error("all summarization tiers failed",
		"attempts", len(s.textTiers),
		"last_model", last.Model)
	return nil, fmt.Errorf("%w: last attempt %s (model %s): %v",
		generation.ErrGenerationFailed, last.Source, last.Model, attemptErrs)
}

// DescribeImage builds the image prompt and walks the image tiers in
// order. A request that exhausts the sequence still succeeds, carrying
// the sentinel unavailable text.
func (s *analysisService) DescribeImage(
	ctx context.Context,
	req *domain.ImageRequest,
) (*domain.GenerationResult, error) {
	prompt := generation.BuildImagePrompt(req.Options)
	image := &generation.InlineImage{Data: req.Data, MIMEType: req.MIMEType}
	log := s.logger.With(
		"request_id", uuid.New().String(),
		"mode", domain.ModeImageContext,
	)

	text, tier, attemptErrs := s.tryTiers(ctx, log, s.imageTiers, prompt, image)
	if text != "" {
		return domain.NewGenerationResult(text, tier.Source, tier.Model, domain.ModeImageContext, req.Options)
	}

	var model string
	if len(s.imageTiers) > 0 {
		model = s.imageTiers[0].Model
	}

	log.Warn("image analysis unavailable, substituting sentinel result",
		"attempts", len(s.imageTiers),
		"errors", attemptErrs)
	return domain.NewUnavailableResult(model, req.Options), nil
}

// tryTiers walks the tier sequence strictly sequentially, returning the
// first non-empty completion together with the tier that produced it.
// When every tier fails it returns the aggregated attempt errors.
func (s *analysisService) tryTiers(
	ctx context.Context,
	log *slog.Logger,
	tiers []ProviderTier,
	prompt string,
	image *generation.InlineImage,
) (string, ProviderTier, *multierror.Error) {
	var attemptErrs *multierror.Error

	for _, tier := range tiers {
		log.Debug("attempting provider tier", "source", tier.Source, "model", tier.Model)

		text, err := tier.Generator.Generate(ctx, prompt, image)
		if err != nil {
			// Unavailable clients fail without a round trip; that is
			// expected operation, not an incident.
			level := slog.LevelWarn
			if errors.Is(err, generation.ErrProviderUnavailable) {
				level = slog.LevelDebug
			}
			log.Log(ctx, level, "provider tier failed",
				"source", tier.Source,
				"model", tier.Model,
				"error", err)

			attemptErrs = multierror.Append(attemptErrs,
				fmt.Errorf("%s (model %s): %w", tier.Source, tier.Model, err))
			continue
		}

		if text == "" {
			attemptErrs = multierror.Append(attemptErrs,
				fmt.Errorf("%s (model %s): %w: empty completion", tier.Source, tier.Model,
					generation.ErrInvalidResponse))
			continue
		}

		log.Info("provider tier answered",
			"source", tier.Source,
			"model", tier.Model,
			"response_length", len(text))
		return text, tier, nil
	}

	return "", ProviderTier{}, attemptErrs
}
