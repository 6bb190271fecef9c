package source

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSource is a testify mock of Source.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// NewMockSource creates a MockSource whose expectations are asserted on test cleanup.
func NewMockSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSource {
	m := &MockSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
