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

type circuitFixture struct {
	users    *MockUserRepository
	circuits *MockCircuitRepository
	stops    *MockStopRepository
	routes   *MockRouteRepository
	cities   *MockCityRepository
	places   *MockPlaceRepository
	uc       *usecase.CircuitUseCase
}

func newCircuitFixture() *circuitFixture {
	f := &circuitFixture{
		users:    &MockUserRepository{},
		circuits: &MockCircuitRepository{},
		stops:    &MockStopRepository{},
		routes:   &MockRouteRepository{},
		cities:   &MockCityRepository{},
		places:   &MockPlaceRepository{},
	}
	f.uc = usecase.NewCircuitUseCase(f.users, f.circuits, f.stops, f.routes,
		f.cities, f.places, zap.NewNop())
	return f
}

func TestCircuitUseCase_ListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("summaries carry city name and stop count", func(t *testing.T) {
		f := newCircuitFixture()
		f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
		f.circuits.On("ListByOwner", ctx, int64(1), (*int64)(nil)).
			Return([]*domain.Circuit{testCircuit()}, nil)
		f.stops.On("CountByCircuit", ctx, int64(10)).Return(4, nil)
		f.cities.On("GetByID", ctx, int64(100)).Return(testCity(), nil)

		summaries, err := f.uc.ListMine(ctx, ownerEmail, nil)

		assert.NoError(t, err)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "Marrakech", summaries[0].CityName)
		assert.Equal(t, 4, summaries[0].StopCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newCircuitFixture()
		f.users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, errors.ErrUserNotFound)

		_, err := f.uc.ListMine(ctx, "nobody@example.com", nil)

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestCircuitUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign circuit reads as not found", func(t *testing.T) {
		f := newCircuitFixture()
		f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
		foreign := testCircuit()
		foreign.CreatedBy = 99
		f.circuits.On("GetByID", ctx, int64(10)).Return(foreign, nil)

		_, err := f.uc.Get(ctx, ownerEmail, 10)

		assert.ErrorIs(t, err, errors.ErrCircuitNotFound)
	})

	t.Run("stops come back with place details", func(t *testing.T) {
		f := newCircuitFixture()
		f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
		f.circuits.On("GetByID", ctx, int64(10)).Return(testCircuit(), nil)

		stops := makeStops(1, 2)
		stops[0].PlaceID = 51
		stops[1].PlaceID = 52
		f.stops.On("ListByCircuit", ctx, int64(10)).Return(stops, nil)
		f.places.On("GetByIDs", ctx, []int64{51, 52}).Return(map[int64]*domain.Place{
			51: {ID: 51, Name: "Jemaa el-Fna"},
			52: {ID: 52, Name: "Bahia Palace"},
		}, nil)
		f.routes.On("ListByCircuit", ctx, int64(10)).Return([]*domain.CircuitRoute{
			{ID: 5, CircuitID: 10, FromStopID: 1, ToStopID: 2},
		}, nil)
		f.cities.On("GetByID", ctx, int64(100)).Return(testCity(), nil)

		resp, err := f.uc.Get(ctx, ownerEmail, 10)

		assert.NoError(t, err)
		assert.Len(t, resp.Stops, 2)
		assert.Equal(t, "Jemaa el-Fna", resp.Stops[0].PlaceName)
		assert.Len(t, resp.Routes, 1)
	})
}

func TestCircuitUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name is rejected", func(t *testing.T) {
		f := newCircuitFixture()
		f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
		f.circuits.On("GetByID", ctx, int64(10)).Return(testCircuit(), nil)

		blank := "   "
		_, err := f.uc.Update(ctx, ownerEmail, 10, dto.UpdateCircuitRequest{Name: &blank})

		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		f.circuits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCircuitUseCase_Warnings(t *testing.T) {
	ctx := context.Background()

	f := newCircuitFixture()
	f.users.On("GetByEmail", ctx, ownerEmail).Return(testOwner(), nil)
	f.circuits.On("GetByID", ctx, int64(10)).Return(testCircuit(), nil)

	visit := domain.StopKindVisit
	f.stops.On("ListByCircuit", ctx, int64(10)).Return([]*domain.CircuitStop{
		{ID: 1, Position: 1, DayNumber: intPtr(1), StopKind: &visit},
	}, nil)

	warnings, err := f.uc.Warnings(ctx, ownerEmail, 10)

	assert.NoError(t, err)
	codes := warningCodes(warnings)
	assert.Contains(t, codes, domain.WarningTimeWindowNotSet)
	assert.Contains(t, codes, domain.WarningSleepMissing)
	assert.Contains(t, codes, domain.WarningEatMissing)
}
