package rerank

import (
	"context"

	"github.com/deokisok/ootd/internal/domain"
)

// MockClient is a configurable re-ranking client for testing.
// Set the response fields to control what Rerank returns.
type MockClient struct {
	RerankResponse domain.RerankChoice
	RerankError    error

	// Call tracking for assertions
	RerankCalls []domain.RerankRequest
}

func NewMockClient() *MockClient {
	return &MockClient{
		RerankResponse: domain.RerankChoice{Index: 0, Rationale: "Mock rationale"},
	}
}

func (c *MockClient) Rerank(ctx context.Context, req domain.RerankRequest) (domain.RerankChoice, error) {
	c.RerankCalls = append(c.RerankCalls, req)
	if c.RerankError != nil {
		return domain.RerankChoice{}, c.RerankError
	}
	return c.RerankResponse, nil
}
