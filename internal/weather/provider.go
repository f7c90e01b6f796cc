package weather

import (
	"fmt"

	"github.com/deokisok/ootd/internal/domain"
)

// Provider constants
const (
	ProviderOpenMeteo = "openmeteo"
	ProviderMock      = "mock"
	ProviderOff       = "off"
)

// NewClient creates a weather client based on the provider name. The "off"
// provider returns a nil client; callers treat a nil client (like a failed
// lookup) as "no temperature available".
func NewClient(provider string) (domain.WeatherClient, error) {
	switch provider {
	case ProviderOpenMeteo:
		return NewOpenMeteoClient(), nil

	case ProviderMock:
		return NewMockClient(), nil

	case ProviderOff:
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown weather provider: %s (valid options: openmeteo, mock, off)", provider)
	}
}
