// Package textops orchestrates the text operations exposed by the API:
// prompt templating, backend generation, and best-effort usage logging.
package textops

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Prompt templates, one per operation, embedding the user's text verbatim.
const (
	summarizePrompt = "Resuma o seguinte texto de forma concisa e clara em português:\n\n%s\n\nResumo:"
	translatePrompt = "Traduza o seguinte texto para %s:\n\n%s\n\nTradução:"
	sentimentPrompt = "Analise o sentimento do seguinte texto e responda apenas com \"positivo\", \"negativo\" ou \"neutro\":\n\n%s\n\nSentimento:"
)

const defaultTargetLanguage = "inglês"

// SummarizeRequest carries the input for a summarize operation.
type SummarizeRequest struct {
	Text  string
	Model string
}

// TranslateRequest carries the input for a translate operation.
type TranslateRequest struct {
	Text           string
	Model          string
	TargetLanguage string
}

// SentimentRequest carries the input for a sentiment analysis operation.
type SentimentRequest struct {
	Text  string
	Model string
}

// Generator produces text from a model and prompt.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Recorder persists one usage record per request/response pair.
type Recorder interface {
	Record(ctx context.Context, endpoint, inputText, outputText, model string) error
}

// Service describes the text operations offered by the orchestrator.
type Service interface {
	Summarize(ctx context.Context, req SummarizeRequest) (string, error)
	Translate(ctx context.Context, req TranslateRequest) (string, error)
	AnalyzeSentiment(ctx context.Context, req SentimentRequest) (string, error)
}

type service struct {
	generator    Generator
	recorder     Recorder
	defaultModel string
	log          zerolog.Logger
}

// NewService wires the text operations service.
func NewService(generator Generator, recorder Recorder, defaultModel string, log zerolog.Logger) Service {
	return &service{
		generator:    generator,
		recorder:     recorder,
		defaultModel: defaultModel,
		log:          log.With().Str("component", "textops-service").Logger(),
	}
}

func (s *service) Summarize(ctx context.Context, req SummarizeRequest) (string, error) {
	model := s.modelOrDefault(req.Model)
	prompt := fmt.Sprintf(summarizePrompt, req.Text)

	result, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	s.recordUsage("summarize", req.Text, result, model)
	return result, nil
}

func (s *service) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	model := s.modelOrDefault(req.Model)
	target := req.TargetLanguage
	if target == "" {
		target = defaultTargetLanguage
	}
	prompt := fmt.Sprintf(translatePrompt, target, req.Text)

	result, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	s.recordUsage("translate", req.Text, result, model)
	return result, nil
}

func (s *service) AnalyzeSentiment(ctx context.Context, req SentimentRequest) (string, error) {
	model := s.modelOrDefault(req.Model)
	prompt := fmt.Sprintf(sentimentPrompt, req.Text)

	result, err := s.generator.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	s.recordUsage("analyze_sentiment", req.Text, result, model)
	return result, nil
}

// recordUsage persists the request/response pair as a detached, intentionally
// unawaited write. Failures are logged and discarded: the usage index is a
// best-effort side channel and must never affect the caller's response.
func (s *service) recordUsage(endpoint, inputText, outputText, model string) {
	go func() {
		if err := s.recorder.Record(context.Background(), endpoint, inputText, outputText, model); err != nil {
			s.log.Error().Err(err).Str("endpoint", endpoint).Msg("usage record write failed")
		}
	}()
}

func (s *service) modelOrDefault(model string) string {
	if model == "" {
		return s.defaultModel
	}
	return model
}
