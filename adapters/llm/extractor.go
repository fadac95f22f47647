package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/internal/domain/profile"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrNoAPIKey      = errors.New("no API key configured")
	ErrNoJSONFound   = errors.New("no JSON found in response")
	ErrResponseParse = errors.New("failed to parse model response")
)

// ProviderError carries a non-2xx reply from the backend, body included,
// so the admin panel can show what the provider said.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// Extractor sends resume text to the configured LLM backend and normalizes
// the reply into a ProfilePatch. One request per attempt, no retries; the
// caller decides whether to re-invoke.
type Extractor struct {
	client    chatClient
	provider  string
	scanJSON  bool
	available bool
	configErr error
	log       logger.Logger
}

func NewExtractor(cfg config.Config, log logger.Logger) service.ResumeExtractor {
	e := &Extractor{provider: cfg.AI.Provider, log: log}

	switch cfg.AI.Provider {
	case "anthropic":
		e.available = cfg.Anthropic.APIKey != ""
		e.scanJSON = true
		e.client = newAnthropicClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
	case "custom":
		e.available = cfg.CustomLLM.APIKey != ""
		e.scanJSON = true
		if cfg.CustomLLM.BaseURL == "" {
			e.configErr = errors.New("custom LLM base URL not configured")
			break
		}
		e.client = newOpenAIClient(cfg.CustomLLM.APIKey, cfg.CustomLLM.BaseURL, cfg.CustomLLM.Model, "custom", false)
	default:
		// openai replies are JSON-only by contract, no brace-scan needed
		e.provider = "openai"
		e.available = cfg.OpenAI.APIKey != ""
		e.client = newOpenAIClient(cfg.OpenAI.APIKey, "", cfg.OpenAI.Model, "openai", true)
	}

	return e
}

func (e *Extractor) Available() bool {
	return e.available
}

func (e *Extractor) Provider() string {
	return e.provider
}

func (e *Extractor) Extract(ctx context.Context, resumeText string) (*profile.ProfilePatch, error) {
	if !e.available {
		return nil, fmt.Errorf("%w for %s", ErrNoAPIKey, e.provider)
	}
	if e.configErr != nil {
		return nil, e.configErr
	}

	reply, err := e.client.complete(ctx, extractionPrompt, userPromptPrefix+resumeText)
	if err != nil {
		return nil, err
	}

	raw := reply
	if e.scanJSON {
		raw, err = extractJSONSpan(reply)
		if err != nil {
			return nil, err
		}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	patch := normalizePatch(data)
	e.log.Info("resume extraction completed", zap.String("provider", e.provider))
	return patch, nil
}

// extractJSONSpan pulls the first '{' through the last '}' out of a reply
// that may be wrapped in explanatory prose.
func extractJSONSpan(reply string) (string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return "", ErrNoJSONFound
	}
	return reply[start : end+1], nil
}
