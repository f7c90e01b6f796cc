package weather

import "context"

// MockClient is a configurable weather client for testing.
type MockClient struct {
	Temperature *float64
	Err         error

	// Call tracking for assertions
	Calls []struct{ Lat, Lon float64 }
}

func NewMockClient() *MockClient {
	t := 18.0
	return &MockClient{Temperature: &t}
}

func (c *MockClient) CurrentTemperature(ctx context.Context, lat, lon float64) (*float64, error) {
	c.Calls = append(c.Calls, struct{ Lat, Lon float64 }{lat, lon})
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Temperature, nil
}
