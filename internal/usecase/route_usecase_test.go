package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase"
	"github.com/tour-planning-service/internal/usecase/dto"
)

type routeFixture struct {
	users    *MockUserRepository
	circuits *MockCircuitRepository
	stops    *MockStopRepository
	routes   *MockRouteRepository
	options  *MockTransportOptionRepository
	uc       *usecase.RouteUseCase
}

func newRouteFixture() *routeFixture {
	f := &routeFixture{
		users:    &MockUserRepository{},
		circuits: &MockCircuitRepository{},
		stops:    &MockStopRepository{},
		routes:   &MockRouteRepository{},
		options:  &MockTransportOptionRepository{},
	}
	f.uc = usecase.NewRouteUseCase(f.users, f.circuits, f.stops, f.routes, f.options, zap.NewNop())
	return f
}

func (f *routeFixture) expectOwnedCircuit(ctx context.Context) {
	f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
	f.circuits.On("GetByID", ctx, int64(10)).Return(testCircuit(), nil)
}

func (f *routeFixture) expectStops(ctx context.Context) {
	f.stops.On("GetByID", ctx, int64(1)).Return(&domain.CircuitStop{ID: 1, CircuitID: 10, PlaceID: 51}, nil)
	f.stops.On("GetByID", ctx, int64(2)).Return(&domain.CircuitStop{ID: 2, CircuitID: 10, PlaceID: 52}, nil)
}

func TestRouteUseCase_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("identical endpoints are rejected", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)

		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{FromStopID: 1, ToStopID: 1})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("stop from another circuit reads as not found", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)

		f.stops.On("GetByID", ctx, int64(1)).Return(&domain.CircuitStop{ID: 1, CircuitID: 10, PlaceID: 51}, nil)
		f.stops.On("GetByID", ctx, int64(2)).Return(&domain.CircuitStop{ID: 2, CircuitID: 777, PlaceID: 52}, nil)

		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{FromStopID: 1, ToStopID: 2})

		assert.ErrorIs(t, err, errors.ErrStopNotFound)
	})

	t.Run("new route is created when none exists", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		f.routes.On("FindByStops", ctx, int64(10), int64(1), int64(2)).Return(nil, nil)
		f.routes.On("Save", ctx, mock.MatchedBy(func(r *domain.CircuitRoute) bool {
			return r.ID == 0 && r.CircuitID == 10 && r.FromStopID == 1 && r.ToStopID == 2
		})).Return(&domain.CircuitRoute{ID: 5, CircuitID: 10, FromStopID: 1, ToStopID: 2}, nil)

		resp, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{FromStopID: 1, ToStopID: 2})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		f.routes.AssertExpectations(t)
	})

	t.Run("existing route is updated in place", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		existing := &domain.CircuitRoute{ID: 5, CircuitID: 10, FromStopID: 1, ToStopID: 2}
		f.routes.On("FindByStops", ctx, int64(10), int64(1), int64(2)).Return(existing, nil)
		f.routes.On("Save", ctx, mock.MatchedBy(func(r *domain.CircuitRoute) bool {
			return r.ID == 5 && r.DistanceKm != nil && *r.DistanceKm == 3.5
		})).Return(existing, nil)

		distance := 3.5
		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{
			FromStopID: 1, ToStopID: 2, DistanceKm: &distance,
		})

		assert.NoError(t, err)
		f.routes.AssertExpectations(t)
	})

	t.Run("omitting the option keeps the stored one", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		optionID := int64(7)
		existing := &domain.CircuitRoute{
			ID: 5, CircuitID: 10, FromStopID: 1, ToStopID: 2, TransportOptionID: &optionID,
		}
		f.routes.On("FindByStops", ctx, int64(10), int64(1), int64(2)).Return(existing, nil)
		f.routes.On("Save", ctx, mock.MatchedBy(func(r *domain.CircuitRoute) bool {
			return r.TransportOptionID != nil && *r.TransportOptionID == 7 &&
				r.DistanceKm != nil && *r.DistanceKm == 3.5
		})).Return(existing, nil)

		distance := 3.5
		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{
			FromStopID: 1, ToStopID: 2, DistanceKm: &distance,
		})

		assert.NoError(t, err)
		f.routes.AssertExpectations(t)
	})

	t.Run("mismatched transport option is rejected", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		option := &domain.TransportOption{ID: 7, FromPlaceID: 51, ToPlaceID: 99, Mode: "taxi"}
		f.options.On("GetByID", ctx, int64(7)).Return(option, nil)

		optionID := int64(7)
		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{
			FromStopID: 1, ToStopID: 2, TransportOptionID: &optionID,
		})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		f.routes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reversed bidirectional option matches", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		option := &domain.TransportOption{
			ID: 7, FromPlaceID: 52, ToPlaceID: 51, Mode: "bus", Bidirectional: true,
		}
		f.options.On("GetByID", ctx, int64(7)).Return(option, nil)
		f.routes.On("FindByStops", ctx, int64(10), int64(1), int64(2)).Return(nil, nil)
		f.routes.On("Save", ctx, mock.Anything).
			Return(&domain.CircuitRoute{ID: 5, CircuitID: 10, FromStopID: 1, ToStopID: 2}, nil)

		optionID := int64(7)
		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{
			FromStopID: 1, ToStopID: 2, TransportOptionID: &optionID,
		})

		assert.NoError(t, err)
		f.routes.AssertExpectations(t)
	})

	t.Run("option fills fields the request leaves unset", func(t *testing.T) {
		f := newRouteFixture()
		f.expectOwnedCircuit(ctx)
		f.expectStops(ctx)

		distance := 12.0
		duration := 25
		option := &domain.TransportOption{
			ID: 7, FromPlaceID: 51, ToPlaceID: 52, Mode: "bus",
			DistanceKm: &distance, DurationMinutes: &duration,
		}
		f.options.On("GetByID", ctx, int64(7)).Return(option, nil)
		f.routes.On("FindByStops", ctx, int64(10), int64(1), int64(2)).Return(nil, nil)

		f.routes.On("Save", ctx, mock.MatchedBy(func(r *domain.CircuitRoute) bool {
			// Explicit duration wins, mode and distance come from the option.
			return r.TransportMode != nil && *r.TransportMode == "bus" &&
				r.DistanceKm != nil && *r.DistanceKm == 12.0 &&
				r.DurationMinutes != nil && *r.DurationMinutes == 40
		})).Return(&domain.CircuitRoute{ID: 5}, nil)

		optionID := int64(7)
		explicitDuration := 40
		_, err := f.uc.Upsert(ctx, ownerEmail, 10, dto.UpsertRouteRequest{
			FromStopID:        1,
			ToStopID:          2,
			TransportOptionID: &optionID,
			DurationMinutes:   &explicitDuration,
		})

		assert.NoError(t, err)
		f.routes.AssertExpectations(t)
	})
}
