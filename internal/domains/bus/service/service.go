package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"busbooking/config"
	"busbooking/infras/busapi"
	"busbooking/infras/otel"
	"busbooking/internal/domains/bus/model"
	"busbooking/internal/domains/bus/model/dto"
	"busbooking/shared"
	"busbooking/shared/cache"
	"busbooking/shared/constant"
	gDto "busbooking/shared/dto"
	"busbooking/shared/failure"
	"busbooking/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	sortByName          = "name"
	sortByRoute         = "route"
	sortByPrice         = "price"
	sortByDepartureDate = "departure_date"

	noTransferCandidates = "no buses available"
)

type Bus interface {
	GetAll(ctx context.Context, q gDto.QueryParams, filter dto.BusFilter) (gDto.Paginated[model.Bus], error)
	Get(ctx context.Context, id int64) (model.Bus, error)
	Create(ctx context.Context, req dto.BusRequest) (model.Bus, error)
	Update(ctx context.Context, id int64, req dto.BusRequest) (model.Bus, error)
	Delete(ctx context.Context, id int64) error
	TransferCandidates(ctx context.Context, sourceBusID int64) (dto.TransferCandidatesResponse, error)
}

type serviceImpl struct {
	api   busapi.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(api busapi.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Bus {
	return &serviceImpl{
		api:   api,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, q gDto.QueryParams, filter dto.BusFilter) (res gDto.Paginated[model.Bus], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	buses, err := s.all(ctx)
	if err != nil {
		return res, err
	}

	filtered := make([]model.Bus, 0, len(buses))
	for _, bus := range buses {
		if filter.Match(bus) {
			filtered = append(filtered, bus)
		}
	}

	sortBuses(filtered, q)

	return gDto.Paginate(filtered, q), nil
}

// all serves the whole catalogue from cache, refreshing it from the bus management API on a miss.
func (s *serviceImpl) all(ctx context.Context) ([]model.Bus, error) {
	var buses []model.Bus

	err := s.cache.Get(ctx, constant.CacheKeyBuses, &buses)
	if err == nil {
		log.Debug().Str("cacheKey", constant.CacheKeyBuses).Msg("cache hit for buses")

		return buses, nil
	}

	raw, err := s.api.ListBuses(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list buses")

		return nil, fmt.Errorf("failed to list buses: %w", err)
	}

	buses = model.FromAPIs(raw)

	if err := s.cache.Save(ctx, constant.CacheKeyBuses, buses, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save buses to cache")
	}

	return buses, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Bus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bus, err := s.api.GetBus(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to get bus")

		return res, fmt.Errorf("failed to get bus: %w", err)
	}

	return model.FromAPI(bus), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.BusRequest) (res model.Bus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := req.ToAPI()
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	bus, err := s.api.CreateBus(ctx, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to create bus")

		return res, fmt.Errorf("failed to create bus: %w", err)
	}

	s.invalidate(ctx)

	return model.FromAPI(bus), nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.BusRequest) (res model.Bus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload, err := req.ToAPI()
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	bus, err := s.api.UpdateBus(ctx, id, payload)
	if err != nil {
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to update bus")

		return res, fmt.Errorf("failed to update bus: %w", err)
	}

	s.invalidate(ctx)

	return model.FromAPI(bus), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.api.DeleteBus(ctx, id); err != nil {
		log.Error().Err(err).Int64("bus_id", id).Msg("failed to delete bus")

		return fmt.Errorf("failed to delete bus: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// TransferCandidates lists every other bus on the source bus route.
func (s *serviceImpl) TransferCandidates(ctx context.Context, sourceBusID int64) (res dto.TransferCandidatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bus.TransferCandidates")
	defer scope.End()
	defer scope.TraceIfError(err)

	source, err := s.Get(ctx, sourceBusID)
	if err != nil {
		return res, err
	}

	buses, err := s.all(ctx)
	if err != nil {
		return res, err
	}

	res.Source = source
	res.Candidates = Candidates(source, buses)

	if len(res.Candidates) == 0 {
		res.Message = noTransferCandidates
	}

	return res, nil
}

// Candidates keeps the buses a booking on source may be transferred to, in catalogue order.
func Candidates(source model.Bus, buses []model.Bus) []model.Bus {
	res := make([]model.Bus, 0)

	for _, bus := range buses {
		if bus.IsTransferCandidateFor(source) {
			res = append(res, bus)
		}
	}

	return res
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(constant.CacheKeyBuses)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate bus cache")
	}
}

func sortBuses(buses []model.Bus, q gDto.QueryParams) {
	var less func(a, b model.Bus) bool

	switch strings.ToLower(q.SortBy) {
	case sortByName:
		less = func(a, b model.Bus) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case sortByRoute:
		less = func(a, b model.Bus) bool { return strings.ToLower(a.Route) < strings.ToLower(b.Route) }
	case sortByPrice:
		less = func(a, b model.Bus) bool { return a.Price < b.Price }
	case sortByDepartureDate:
		less = func(a, b model.Bus) bool {
			return departure(a) < departure(b)
		}
	default:
		return
	}

	sort.SliceStable(buses, func(i, j int) bool {
		if q.Descending() {
			return less(buses[j], buses[i])
		}

		return less(buses[i], buses[j])
	})
}

// departure builds a sortable yyyy-mm-dd HH:mm key, unparseable dates sort first.
func departure(bus model.Bus) string {
	t, err := timezone.ParseDate(bus.DepartureDate)
	if err != nil {
		return constant.Empty
	}

	return t.Format("2006-01-02") + " " + bus.DepartureTime
}
