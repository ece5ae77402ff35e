package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wayfinder/wayfinder-api/internal/model"
	"github.com/wayfinder/wayfinder-api/internal/repository"
)

// MockGeoRepository implements repository.GeoRepository
type MockGeoRepository struct {
	mock.Mock
}

func (m *MockGeoRepository) FindCountryByName(ctx context.Context, name string) (*model.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockGeoRepository) FindRegionByName(ctx context.Context, name string, countryID *int) (*model.Region, error) {
	args := m.Called(ctx, name, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}

func (m *MockGeoRepository) FindCityByName(ctx context.Context, name string, regionID *int) (*model.City, error) {
	args := m.Called(ctx, name, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockGeoRepository) FindCityInBounds(ctx context.Context, minLat, maxLat, minLon, maxLon float64) (*model.City, error) {
	args := m.Called(ctx, minLat, maxLat, minLon, maxLon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockGeoRepository) GetCountryByID(ctx context.Context, id int) (*model.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockGeoRepository) GetRegionByID(ctx context.Context, id int) (*model.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Region), args.Error(1)
}

func (m *MockGeoRepository) GetCityByID(ctx context.Context, id int) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockGeoRepository) SearchCountries(ctx context.Context, query string, limit int) ([]model.Country, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockGeoRepository) SearchCities(ctx context.Context, query string, limit int) ([]model.CityDetail, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CityDetail), args.Error(1)
}

func (m *MockGeoRepository) BulkInsertCountries(ctx context.Context, countries []model.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func (m *MockGeoRepository) BulkInsertRegions(ctx context.Context, regions []model.Region) error {
	args := m.Called(ctx, regions)
	return args.Error(0)
}

func (m *MockGeoRepository) BulkInsertCities(ctx context.Context, cities []model.City) error {
	args := m.Called(ctx, cities)
	return args.Error(0)
}

// MockLocationRepository implements repository.LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetOrCreate(ctx context.Context, loc model.Location) (*model.Location, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

// MockExperienceRepository implements repository.ExperienceRepository
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) Create(ctx context.Context, exp model.Experience, tagIDs []string) error {
	args := m.Called(ctx, exp, tagIDs)
	return args.Error(0)
}

func (m *MockExperienceRepository) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Experience), args.Error(1)
}

func (m *MockExperienceRepository) ListWithFilters(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Experience), args.Error(1)
}

// MockRatingRepository implements repository.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByExperience(ctx context.Context, experienceID string) ([]model.Rating, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

// MockTagRepository implements repository.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetOrCreateByNames(ctx context.Context, names []string) ([]model.Tag, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) ListAll(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTipRepository implements repository.TipRepository
type MockTipRepository struct {
	mock.Mock
}

func (m *MockTipRepository) Create(ctx context.Context, tip model.Tip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockTipRepository) ListWithFilters(ctx context.Context, f model.TipFilter) ([]model.Tip, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tip), args.Error(1)
}

func (m *MockTipRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.Tip, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tip), args.Error(1)
}

// MockWishlistRepository implements repository.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Create(ctx context.Context, wishlist model.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) GetByID(ctx context.Context, id string) (*model.Wishlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(ctx context.Context, userID string) ([]model.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) AddItem(ctx context.Context, item model.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) ListItems(ctx context.Context, wishlistID string) ([]model.WishlistItem, error) {
	args := m.Called(ctx, wishlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistItem), args.Error(1)
}

// MockBlobStore implements storage.BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

type testMocks struct {
	geo        *MockGeoRepository
	location   *MockLocationRepository
	experience *MockExperienceRepository
	rating     *MockRatingRepository
	tag        *MockTagRepository
	user       *MockUserRepository
	tip        *MockTipRepository
	wishlist   *MockWishlistRepository
	blobs      *MockBlobStore
}

func newTestService() (*Service, *testMocks) {
	m := &testMocks{
		geo:        new(MockGeoRepository),
		location:   new(MockLocationRepository),
		experience: new(MockExperienceRepository),
		rating:     new(MockRatingRepository),
		tag:        new(MockTagRepository),
		user:       new(MockUserRepository),
		tip:        new(MockTipRepository),
		wishlist:   new(MockWishlistRepository),
		blobs:      new(MockBlobStore),
	}
	svc := NewService(&repository.Container{
		Geo:        m.geo,
		Location:   m.location,
		Experience: m.experience,
		Rating:     m.rating,
		Tag:        m.tag,
		User:       m.user,
		Tip:        m.tip,
		Wishlist:   m.wishlist,
	}, m.blobs)
	return svc, m
}
