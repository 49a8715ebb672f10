package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of feed.Client
type Client struct {
	mock.Mock
}

func (m *Client) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if body, ok := args.Get(0).([]byte); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}
