package api

import (
	"context"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockStationResolver struct {
	mock.Mock
}

func (m *MockStationResolver) Resolve(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

type MockScheduleSource struct {
	mock.Mock
}

func (m *MockScheduleSource) Fetch(ctx context.Context, from, to, date string) ([]byte, error) {
	args := m.Called(ctx, from, to, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockPlannerUseCase struct {
	mock.Mock
}

func (m *MockPlannerUseCase) Plan(ctx context.Context, req domain.TripRequest) (*domain.Plan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}
