package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/concurrency"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
	"github.com/osse101/GardenPlanner_Go/internal/harvest"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
	"github.com/osse101/GardenPlanner_Go/internal/metrics"
	"github.com/osse101/GardenPlanner_Go/internal/production"
	"github.com/osse101/GardenPlanner_Go/internal/savecode"
	"github.com/osse101/GardenPlanner_Go/internal/valuation"
	"github.com/osse101/GardenPlanner_Go/internal/worker"
)

// Service runs plans against save codes
type Service interface {
	Simulate(ctx context.Context, req Request) (*SimulateReport, error)
	Produce(ctx context.Context, req Request) (*ProduceReport, error)
	Value(ctx context.Context, req Request) (*ValueReport, error)
	Normalize(ctx context.Context, code string) (*NormalizeReport, error)
	Compare(ctx context.Context, reqs []Request) (*CompareReport, error)
	Catalog() *catalog.Table
	CheckHealth(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Config sizes the service's cache and worker pool
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	Workers   int
	MaxBatch  int
}

// DefaultConfig returns the defaults used when a field is zero
func DefaultConfig() Config {
	return Config{
		CacheSize: DefaultCacheSize,
		CacheTTL:  DefaultCacheTTL,
		Workers:   DefaultWorkers,
		MaxBatch:  DefaultMaxBatch,
	}
}

type service struct {
	catalog  *catalog.Table
	codec    *savecode.Codec
	cache    *expirable.LRU[string, any]
	pool     *worker.Pool
	validate *validator.Validate
	locks    *concurrency.LockManager
	maxBatch int
	stopOnce sync.Once
	stopped  atomic.Bool
}

// NewService creates a planner service and starts its worker pool
func NewService(cat *catalog.Table, cfg Config) Service {
	def := DefaultConfig()
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = def.MaxBatch
	}

	pool := worker.NewPool(cfg.Workers, cfg.MaxBatch)
	pool.Start()

	return &service{
		catalog:  cat,
		codec:    savecode.NewCodec(cat),
		cache:    expirable.NewLRU[string, any](cfg.CacheSize, nil, cfg.CacheTTL),
		pool:     pool,
		validate: validator.New(),
		locks:    concurrency.NewLockManager(),
		maxBatch: cfg.MaxBatch,
	}
}

func (s *service) Catalog() *catalog.Table {
	return s.catalog
}

// Simulate decodes the layout and walks its harvest
func (s *service) Simulate(ctx context.Context, req Request) (rep *SimulateReport, err error) {
	defer s.observe(ctx, OpSimulate, time.Now(), &err)

	g, req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	key := cacheKey(OpSimulate, req)
	defer s.locks.Lock(key)()
	if cached, ok := s.lookup(ctx, OpSimulate, key); ok {
		return cached.(*SimulateReport), nil
	}

	res, err := harvest.Simulate(g.CroppedTiles(), req.Harvest)
	if err != nil {
		return nil, err
	}
	metrics.SimulatedDays.WithLabelValues(OpSimulate).Observe(float64(res.Horizon))

	rep = &SimulateReport{SaveCode: req.SaveCode, Summary: g.Summarize(), Harvest: res}
	s.store(key, rep)
	return rep, nil
}

// Produce runs the harvest through the crafter roster and prices the output
func (s *service) Produce(ctx context.Context, req Request) (rep *ProduceReport, err error) {
	defer s.observe(ctx, OpProduce, time.Now(), &err)

	g, req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	key := cacheKey(OpProduce, req)
	defer s.locks.Lock(key)()
	if cached, ok := s.lookup(ctx, OpProduce, key); ok {
		return cached.(*ProduceReport), nil
	}

	rep, err = s.produce(ctx, g, req)
	if err != nil {
		return nil, err
	}
	s.store(key, rep)
	return rep, nil
}

func (s *service) produce(ctx context.Context, g *garden.Garden, req Request) (*ProduceReport, error) {
	res, err := harvest.Simulate(g.CroppedTiles(), req.Harvest)
	if err != nil {
		return nil, err
	}

	orch := production.New(s.catalog, req.settings(), logger.FromContext(ctx))
	if err := orch.SetOptions(req.Options); err != nil {
		return nil, err
	}
	if req.OpenPool != nil {
		if err := orch.SetOpenPool(req.OpenPool.Seeders, req.OpenPool.Jars); err != nil {
			return nil, err
		}
	}

	ledger := valuation.NewLedger(s.catalog)
	prod, err := orch.Run(res, ledger)
	if err != nil {
		return nil, err
	}
	metrics.SimulatedDays.WithLabelValues(OpProduce).Observe(float64(prod.Days))
	metrics.CraftersAssigned.Observe(float64(len(prod.Crafters)))
	metrics.GoldValued.Observe(float64(prod.TotalValue))

	return &ProduceReport{
		SaveCode:   req.SaveCode,
		Harvest:    res,
		Production: prod,
		Ledger:     ledger.Days(),
	}, nil
}

// Value prices the harvest log directly, carrying conversion remainders
func (s *service) Value(ctx context.Context, req Request) (rep *ValueReport, err error) {
	defer s.observe(ctx, OpValue, time.Now(), &err)

	g, req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	key := cacheKey(OpValue, req)
	defer s.locks.Lock(key)()
	if cached, ok := s.lookup(ctx, OpValue, key); ok {
		return cached.(*ValueReport), nil
	}

	res, err := harvest.Simulate(g.CroppedTiles(), req.Harvest)
	if err != nil {
		return nil, err
	}
	v, err := valuation.Value(res.Log, domain.ProductsFromOptions(req.Options), s.catalog)
	if err != nil {
		return nil, err
	}
	metrics.GoldValued.Observe(float64(v.Total))

	rep = &ValueReport{SaveCode: req.SaveCode, Valuation: v, Remainders: v.RemainderList()}
	s.store(key, rep)
	return rep, nil
}

// Normalize rewrites a save code in the current version
func (s *service) Normalize(ctx context.Context, code string) (rep *NormalizeReport, err error) {
	defer s.observe(ctx, OpNormalize, time.Now(), &err)

	version, err := savecode.Version(strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	g, err := s.codec.Decode(code)
	if err != nil {
		return nil, err
	}
	normalized, err := s.codec.Encode(g)
	if err != nil {
		return nil, err
	}
	metrics.SaveCodesNormalized.WithLabelValues(version).Inc()

	return &NormalizeReport{
		SaveCode:      normalized,
		SourceVersion: version,
		Upgraded:      version != savecode.VersionCurrent,
		Summary:       g.Summarize(),
	}, nil
}

// Compare runs every request through Produce on the worker pool and ranks
// them by total gold. A failing layout is reported in its entry and does not
// fail the batch.
func (s *service) Compare(ctx context.Context, reqs []Request) (rep *CompareReport, err error) {
	defer s.observe(ctx, OpCompare, time.Now(), &err)

	if len(reqs) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyBatch, domain.ErrInvalidInput)
	}
	if len(reqs) > s.maxBatch {
		return nil, fmt.Errorf(ErrFmtBatchTooLarge, domain.ErrInvalidInput, s.maxBatch, len(reqs))
	}

	entries := make([]CompareEntry, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		entries[i] = CompareEntry{Index: i}
		wg.Add(1)
		job := worker.JobFunc(func(ctx context.Context) error {
			defer wg.Done()
			return s.compareOne(ctx, req, &entries[i])
		})
		if err := s.pool.Submit(ctx, job); err != nil {
			wg.Done()
			return nil, err
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	rep = &CompareReport{Entries: entries, Best: -1}
	for i, e := range entries {
		if e.Error != "" {
			continue
		}
		if rep.Best < 0 || e.TotalValue > entries[rep.Best].TotalValue {
			rep.Best = i
		}
	}
	return rep, nil
}

func (s *service) compareOne(ctx context.Context, req Request, entry *CompareEntry) error {
	if err := ctx.Err(); err != nil {
		entry.Error = err.Error()
		return err
	}
	prod, err := s.Produce(ctx, req)
	if err != nil {
		entry.Error = err.Error()
		logger.FromContext(ctx).Debug(LogMsgCompareFailed, "index", entry.Index, "error", err)
		return fmt.Errorf(ErrFmtCompareEntry, entry.Index, err)
	}
	entry.SaveCode = prod.SaveCode
	entry.TotalValue = prod.Production.TotalValue
	entry.Days = prod.Production.Days
	entry.Crafters = len(prod.Production.Crafters)
	return nil
}

// CheckHealth fails once the service has been shut down
func (s *service) CheckHealth(ctx context.Context) error {
	if s.stopped.Load() {
		return worker.ErrPoolStopped
	}
	return ctx.Err()
}

// Shutdown stops the worker pool, waiting for running jobs
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	s.stopped.Store(true)
	done := make(chan struct{})
	go func() {
		s.stopOnce.Do(s.pool.Stop)
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// prepare validates req, resolves option crop names and decodes the layout.
// The returned request carries the normalized save code.
func (s *service) prepare(req Request) (*garden.Garden, Request, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, req, fmt.Errorf(ErrFmtInvalidRequest, domain.ErrInvalidInput, err)
	}

	opts := make([]domain.CropOption, len(req.Options))
	for i, opt := range req.Options {
		kind, err := s.catalog.Resolve(string(opt.Crop))
		if err != nil {
			return nil, req, fmt.Errorf(ErrFmtOptionCrop, domain.ErrInvalidInput, i, err)
		}
		opt.Crop = kind
		opts[i] = opt
	}
	req.Options = opts

	g, err := s.codec.Decode(req.SaveCode)
	if err != nil {
		return nil, req, err
	}
	normalized, err := s.codec.Encode(g)
	if err != nil {
		return nil, req, err
	}
	req.SaveCode = normalized
	return g, req, nil
}

func (s *service) lookup(ctx context.Context, op, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		metrics.CacheMisses.WithLabelValues(op).Inc()
		return nil, false
	}
	metrics.CacheHits.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Debug(LogMsgCacheHit, "operation", op)
	return v, true
}

func (s *service) store(key string, v any) {
	if key != "" {
		s.cache.Add(key, v)
	}
}

// observe records the outcome of one operation
func (s *service) observe(ctx context.Context, op string, start time.Time, err *error) {
	metrics.PlannerRunsTotal.WithLabelValues(op).Inc()
	metrics.PlannerRunDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	log := logger.FromContext(ctx)
	if *err != nil {
		reason := Reason(*err)
		metrics.PlannerRunFailures.WithLabelValues(op, reason).Inc()
		if domain.IsFatal(*err) {
			log.Warn(LogMsgRunFailed, "operation", op, "reason", reason, "error", *err)
		} else {
			log.Debug(LogMsgRunFailed, "operation", op, "reason", reason, "error", *err)
		}
		return
	}
	log.Debug(LogMsgRunFinished, "operation", op, "duration", time.Since(start))
}

// Reason classifies err for metrics and HTTP mapping
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCorruptState):
		return ReasonCorruptState
	case errors.Is(err, domain.ErrSimulationDivergence):
		return ReasonDivergence
	case errors.Is(err, domain.ErrInvalidSaveFormat):
		return ReasonSaveFormat
	case errors.Is(err, domain.ErrInvalidPlacement):
		return ReasonPlacement
	case errors.Is(err, domain.ErrCrafterCapReached):
		return ReasonCapReached
	case errors.Is(err, domain.ErrUnknownCrop):
		return ReasonUnknownCrop
	case errors.Is(err, domain.ErrUnknownFertiliser):
		return ReasonUnknownFert
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCancelled
	default:
		return ReasonInternalError
	}
}

// cacheKey identifies a request by operation and content. req must already
// carry the normalized save code so equivalent codes share an entry.
func cacheKey(op string, req Request) string {
	body, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return CacheSchemaVersion + ":" + op + ":" + string(body)
}
