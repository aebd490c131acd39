package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tour-planning-service/internal/domain"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCircuitRepository is a mock of CircuitRepository
type MockCircuitRepository struct {
	mock.Mock
}

func (m *MockCircuitRepository) GetByID(ctx context.Context, id int64) (*domain.Circuit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Circuit), args.Error(1)
}

func (m *MockCircuitRepository) ListByOwner(ctx context.Context, userID int64, cityID *int64) ([]*domain.Circuit, error) {
	args := m.Called(ctx, userID, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Circuit), args.Error(1)
}

func (m *MockCircuitRepository) Create(ctx context.Context, circuit *domain.Circuit) (*domain.Circuit, error) {
	args := m.Called(ctx, circuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Circuit), args.Error(1)
}

func (m *MockCircuitRepository) Update(ctx context.Context, circuit *domain.Circuit) error {
	args := m.Called(ctx, circuit)
	return args.Error(0)
}

func (m *MockCircuitRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCircuitRepository) CreateWithStops(ctx context.Context, circuit *domain.Circuit, stops []*domain.CircuitStop) (*domain.Circuit, error) {
	args := m.Called(ctx, circuit, stops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Circuit), args.Error(1)
}

// MockStopRepository is a mock of StopRepository
type MockStopRepository struct {
	mock.Mock
}

func (m *MockStopRepository) GetByID(ctx context.Context, id int64) (*domain.CircuitStop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitStop), args.Error(1)
}

func (m *MockStopRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitStop, error) {
	args := m.Called(ctx, circuitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CircuitStop), args.Error(1)
}

func (m *MockStopRepository) CountByCircuit(ctx context.Context, circuitID int64) (int, error) {
	args := m.Called(ctx, circuitID)
	return args.Int(0), args.Error(1)
}

func (m *MockStopRepository) MaxPosition(ctx context.Context, circuitID int64) (int, error) {
	args := m.Called(ctx, circuitID)
	return args.Int(0), args.Error(1)
}

func (m *MockStopRepository) ExistsByCircuitAndPlace(ctx context.Context, circuitID, placeID int64) (bool, error) {
	args := m.Called(ctx, circuitID, placeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStopRepository) InsertWithShift(ctx context.Context, stop *domain.CircuitStop, shifts []domain.PositionChange) (*domain.CircuitStop, error) {
	args := m.Called(ctx, stop, shifts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitStop), args.Error(1)
}

func (m *MockStopRepository) UpdateWithShift(ctx context.Context, stop *domain.CircuitStop, shifts []domain.PositionChange) error {
	args := m.Called(ctx, stop, shifts)
	return args.Error(0)
}

func (m *MockStopRepository) DeleteWithShift(ctx context.Context, stopID int64, shifts []domain.PositionChange) error {
	args := m.Called(ctx, stopID, shifts)
	return args.Error(0)
}

func (m *MockStopRepository) ApplyPositions(ctx context.Context, circuitID int64, changes []domain.PositionChange) error {
	args := m.Called(ctx, circuitID, changes)
	return args.Error(0)
}

func (m *MockStopRepository) CreateBatchWithPlaces(ctx context.Context, places []*domain.Place, stops []*domain.CircuitStop) error {
	args := m.Called(ctx, places, stops)
	return args.Error(0)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitRoute, error) {
	args := m.Called(ctx, circuitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CircuitRoute), args.Error(1)
}

func (m *MockRouteRepository) FindByStops(ctx context.Context, circuitID, fromStopID, toStopID int64) (*domain.CircuitRoute, error) {
	args := m.Called(ctx, circuitID, fromStopID, toStopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitRoute), args.Error(1)
}

func (m *MockRouteRepository) Save(ctx context.Context, route *domain.CircuitRoute) (*domain.CircuitRoute, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitRoute), args.Error(1)
}

// MockCityRepository is a mock of CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) ListByCity(ctx context.Context, cityID int64) ([]*domain.Place, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Place, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.Place), args.Error(1)
}

// MockTransportOptionRepository is a mock of TransportOptionRepository
type MockTransportOptionRepository struct {
	mock.Mock
}

func (m *MockTransportOptionRepository) GetByID(ctx context.Context, id int64) (*domain.TransportOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportOption), args.Error(1)
}

// MockCompletionClient is a mock of CompletionClient
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCompletionClient) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// MockWeatherProvider is a mock of WeatherProvider
type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) GetWeatherSummary(ctx context.Context, cityName, date string) string {
	args := m.Called(ctx, cityName, date)
	return args.String(0)
}

// MockSessionRepository is a mock of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitSession, error) {
	args := m.Called(ctx, circuitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CircuitSession), args.Error(1)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*domain.CircuitSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitSession), args.Error(1)
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.CircuitSession) (*domain.CircuitSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CircuitSession), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.CircuitSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
