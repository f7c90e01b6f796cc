package rerank

import (
	"fmt"

	"github.com/deokisok/ootd/internal/domain"
)

// ShortlistSize bounds how many candidates the collaborator ever sees.
const ShortlistSize = 6

// Provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
	ProviderOff       = "off"
)

// NewClient creates a re-ranking client based on the provider name. The
// "off" provider returns a nil client: the recommendation service treats a
// nil client as "keep the default ranking".
func NewClient(provider, apiKey string) (domain.RerankClient, error) {
	switch provider {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(apiKey), nil

	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		return NewAnthropicClient(apiKey), nil

	case ProviderMock:
		return NewMockClient(), nil

	case ProviderOff:
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown rerank provider: %s (valid options: openai, anthropic, mock, off)", provider)
	}
}
