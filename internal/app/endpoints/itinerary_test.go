package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) ListItineraries(ctx context.Context, req dto.SourceRequest) (dto.ListItinerariesResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ListItinerariesResponse), args.Error(1)
}

func (m *MockItineraryService) DiffItineraries(ctx context.Context, req dto.DiffRequest) (dto.DiffResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.DiffResponse), args.Error(1)
}

func TestMakeItineraryEndpoint_DiffItineraries(t *testing.T) {
	errSource := errors.New("source down")
	req := dto.DiffRequest{BaselineSource: "via_3", CandidateSource: "via_ow"}

	diffRequest := func(in interface{}, setupMock func(m *MockItineraryService), want interface{}, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := &MockItineraryService{}
			setupMock(m)
			defer m.AssertExpectations(t)

			got, err := MakeItineraryEndpoint(m).DiffItineraries(context.Background(), in)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("success", diffRequest(&req, func(m *MockItineraryService) {
		m.On("DiffItineraries", mock.Anything, req).Return(dto.DiffResponse{BaselineSource: "via_3"}, nil)
	}, dto.DiffResponse{BaselineSource: "via_3"}, nil))

	t.Run("service_error", diffRequest(&req, func(m *MockItineraryService) {
		m.On("DiffItineraries", mock.Anything, req).Return(dto.DiffResponse{}, errSource)
	}, nil, errSource))

	t.Run("invalid_type", func(t *testing.T) {
		_, err := MakeItineraryEndpoint(&MockItineraryService{}).DiffItineraries(context.Background(), req)
		assert.EqualError(t, err, "invalid type")
	})
}

func TestMakeItineraryEndpoint_ListItineraries(t *testing.T) {
	req := dto.SourceRequest{Source: "via_3"}

	m := &MockItineraryService{}
	m.On("ListItineraries", mock.Anything, req).Return(dto.ListItinerariesResponse{Source: "via_3"}, nil)
	defer m.AssertExpectations(t)

	got, err := MakeItineraryEndpoint(m).ListItineraries(context.Background(), &req)
	assert.NoError(t, err)
	assert.Equal(t, dto.ListItinerariesResponse{Source: "via_3"}, got)

	_, err = MakeItineraryEndpoint(m).ListItineraries(context.Background(), (*dto.SourceRequest)(nil))
	assert.EqualError(t, err, "invalid type")
}
