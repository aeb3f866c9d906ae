package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/travel-admin/internal/domain"
)

type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourRepository) ListSummaries(ctx context.Context) ([]domain.TourSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourSummary), args.Error(1)
}

func (m *MockTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) GetDetails(ctx context.Context, id string) (*domain.TourDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourDetails), args.Error(1)
}

func (m *MockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTourRepository) SetFlag(ctx context.Context, id, column string, value bool) error {
	args := m.Called(ctx, id, column, value)
	return args.Error(0)
}

func (m *MockTourRepository) CountPopular(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTourRepository) ReplaceImages(ctx context.Context, tourID string, items []domain.TourImage) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceHighlights(ctx context.Context, tourID string, items []domain.TourHighlight) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceInclusions(ctx context.Context, tourID string, items []domain.TourInclusion) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceTips(ctx context.Context, tourID string, items []domain.TourTip) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceDailyPrograms(ctx context.Context, tourID string, items []domain.TourDailyProgram) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceDatesPrices(ctx context.Context, tourID string, items []domain.TourDatePrice) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

func (m *MockTourRepository) ReplaceWeather(ctx context.Context, tourID string, items []domain.TourWeatherData) error {
	args := m.Called(ctx, tourID, items)
	return args.Error(0)
}

type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) Upload(ctx context.Context, bucket, path string, data []byte, contentType string, overwrite bool) error {
	args := m.Called(ctx, bucket, path, data, contentType, overwrite)
	return args.Error(0)
}

func (m *MockStorageRepository) Remove(ctx context.Context, bucket string, paths []string) error {
	args := m.Called(ctx, bucket, paths)
	return args.Error(0)
}

func (m *MockStorageRepository) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	args := m.Called(ctx, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorageRepository) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

func (m *MockStorageRepository) ResolvePublicURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockContentRepository) CreateService(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockContentRepository) UpdateService(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteService(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockContentRepository) CreatePartner(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockContentRepository) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockContentRepository) DeletePartner(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ListStats(ctx context.Context) ([]domain.Stat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stat), args.Error(1)
}

func (m *MockContentRepository) GetStat(ctx context.Context, id string) (*domain.Stat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stat), args.Error(1)
}

func (m *MockContentRepository) CreateStat(ctx context.Context, s *domain.Stat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockContentRepository) UpdateStat(ctx context.Context, s *domain.Stat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteStat(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) CountActiveStats(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockContentRepository) SetServiceActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockContentRepository) SetPartnerActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockContentRepository) SetStatActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockRegionImageRepository struct {
	mock.Mock
}

func (m *MockRegionImageRepository) GetByRegions(ctx context.Context, regions []string) ([]domain.RegionImage, error) {
	args := m.Called(ctx, regions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegionImage), args.Error(1)
}

func (m *MockRegionImageRepository) Upsert(ctx context.Context, img *domain.RegionImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetHero(ctx context.Context) (*domain.HeroSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertHero(ctx context.Context, s *domain.HeroSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetLogo(ctx context.Context) (*domain.LogoSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LogoSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertLogo(ctx context.Context, s *domain.LogoSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetMap(ctx context.Context) (*domain.MapSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MapSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertMap(ctx context.Context, s *domain.MapSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) ListMapLocations(ctx context.Context) ([]domain.MapLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MapLocation), args.Error(1)
}

func (m *MockSettingsRepository) CreateMapLocation(ctx context.Context, loc *domain.MapLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateMapLocation(ctx context.Context, loc *domain.MapLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteMapLocation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetFeatured(ctx context.Context) (*domain.FeaturedSectionSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeaturedSectionSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertFeatured(ctx context.Context, s *domain.FeaturedSectionSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetOpportunity(ctx context.Context) (*domain.OpportunitySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpportunitySettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertOpportunity(ctx context.Context, s *domain.OpportunitySettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	args := m.Called(ctx, s, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
