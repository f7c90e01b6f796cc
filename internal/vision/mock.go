package vision

import (
	"context"

	"github.com/deokisok/ootd/internal/domain"
)

// MockClient is a configurable vision client for testing.
// Set the response fields to control what ClassifyGarment returns.
type MockClient struct {
	ClassifyResponse domain.Classification
	ClassifyError    error

	// Call tracking for assertions
	ClassifyCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		ClassifyResponse: domain.Classification{
			Color:       "black",
			Pattern:     "solid",
			Warmth:      "mid",
			Vibe:        "casual",
			Description: "Mock garment",
		},
	}
}

func (c *MockClient) ClassifyGarment(ctx context.Context, image []byte, nameHint string) (domain.Classification, error) {
	c.ClassifyCalls = append(c.ClassifyCalls, nameHint)
	if c.ClassifyError != nil {
		return domain.Classification{}, c.ClassifyError
	}
	return c.ClassifyResponse, nil
}
