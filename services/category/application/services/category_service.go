package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/catalog/pkg/cache"
	"github.com/ghuser/catalog/pkg/domain"
	pkgevents "github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/pkg/repository"
	"github.com/ghuser/catalog/pkg/telemetry"
	"github.com/ghuser/catalog/services/category/domain/events"
	"github.com/ghuser/catalog/services/category/domain/models"
	"github.com/ghuser/catalog/services/category/domain/repositories"
	domainsvcs "github.com/ghuser/catalog/services/category/domain/services"
)

// Publisher sends messages to a topic. *events.EventBus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// categoryCache is the read-through cache. *pkgcache.CategoryCache satisfies it.
type categoryCache interface {
	Get(ctx context.Context, id string) (*pkgcache.CachedCategory, error)
	Set(ctx context.Context, cat *pkgcache.CachedCategory) error
	Delete(ctx context.Context, id string) error
}

// CreateCategoryInput holds the fields accepted on creation.
type CreateCategoryInput struct {
	Name        string
	Description *string
	IsActive    *bool // nil means active
}

// UpdateCategoryInput is a partial update; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name             *string
	Description      *string
	ClearDescription bool // takes precedence over Description
	IsActive         *bool
}

// CategoryService orchestrates the Category use cases.
//
// The in-memory repository is not safe for concurrent use, so every call
// goes through mu. Entities handed to callers are copies; mutating them never
// changes the store.
//
// The cache is warmed under the read lock and invalidated after the write
// lock is released, so a Get never writes back a value an Update replaced.
//
// Events are published after each successful mutation. Publishing is best
// effort: a failure is logged and the mutation still succeeds.
type CategoryService struct {
	mu      sync.RWMutex
	repo    repositories.CategoryRepository
	cache   categoryCache // nil when Redis is disabled
	bus     Publisher     // nil disables events
	log     logger.Logger
	metrics *telemetry.OperationMetrics
	now     func() time.Time
}

// NewCategoryService returns a CategoryService. cache, bus and metrics may be nil.
func NewCategoryService(
	repo repositories.CategoryRepository,
	cache *pkgcache.CategoryCache,
	bus Publisher,
	log logger.Logger,
	metrics *telemetry.OperationMetrics,
) *CategoryService {
	if log == nil {
		log = logger.Nop()
	}
	s := &CategoryService{
		repo:    repo,
		bus:     bus,
		log:     log.With("component", "category_service"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if cache != nil {
		s.cache = cache
	}
	return s
}

// Create validates and stores a new Category, then publishes CategoryCreatedEvent.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (_ *models.Category, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "create", start, err) }()

	c, err := models.CreateCategory(models.CreateCategoryProps{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	}, domainsvcs.ValidateCategory)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.repo.Save(ctx, c)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}

	eventID := uuid.New()
	s.publish(ctx, events.TopicCategoryCreated, eventID, events.CategoryCreatedEvent{
		EventID:     eventID,
		Version:     events.Version,
		CategoryID:  c.CategoryID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		OccurredAt:  s.now(),
	})

	return c.Clone(), nil
}

// Get retrieves a Category using a read-through cache:
//  1. Check Redis first.
//  2. On a miss (or cache error), read the repository.
//  3. Warm the cache with the repository result before releasing the lock.
func (s *CategoryService) Get(ctx context.Context, rawID string) (_ *models.Category, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "get", start, err) }()

	id, err := domain.ParseUuid(rawID)
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", rawID, err)
	}

	if s.cache != nil {
		if c, cerr := s.fromCache(ctx, id); cerr == nil {
			return c, nil
		} else if !errors.Is(cerr, redis.Nil) {
			// Cache error: fall through to the repository.
			s.log.WarnContext(ctx, "category cache read failed", "category_id", id.String(), "error", cerr)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError(s.repo.EntityType(), id)
	}
	c = c.Clone()

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, toCached(c)); cerr != nil {
			s.log.WarnContext(ctx, "category cache write failed", "category_id", id.String(), "error", cerr)
		}
	}

	return c, nil
}

// Search runs a filtered, sorted, paginated lookup. Raw values in in are
// normalized by repository.NewSearchParams.
func (s *CategoryService) Search(ctx context.Context, in repository.SearchInput) (_ repository.SearchResult[*models.Category], err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "search", start, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, err := s.repo.Search(ctx, repository.NewSearchParams(in))
	if err != nil {
		return repository.SearchResult[*models.Category]{}, fmt.Errorf("search categories: %w", err)
	}

	items := result.Items()
	for i, c := range items {
		items[i] = c.Clone()
	}
	return repository.NewSearchResult(repository.SearchResultInput[*models.Category]{
		CurrentPage: result.CurrentPage(),
		Items:       items,
		Total:       result.Total(),
		PerPage:     result.PerPage(),
	}), nil
}

// Update applies in to an existing Category. The stored category is left
// untouched when validation fails.
func (s *CategoryService) Update(ctx context.Context, rawID string, in UpdateCategoryInput) (_ *models.Category, err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "update", start, err) }()

	id, err := domain.ParseUuid(rawID)
	if err != nil {
		return nil, fmt.Errorf("update category %q: %w", rawID, err)
	}

	s.mu.Lock()
	c, err := s.applyUpdate(ctx, id, in)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	eventID := uuid.New()
	s.publish(ctx, events.TopicCategoryUpdated, eventID, events.CategoryUpdatedEvent{
		EventID:     eventID,
		Version:     events.Version,
		CategoryID:  c.CategoryID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		OccurredAt:  s.now(),
	})

	return c.Clone(), nil
}

// applyUpdate must be called with mu held.
func (s *CategoryService) applyUpdate(ctx context.Context, id domain.Uuid, in UpdateCategoryInput) (*models.Category, error) {
	stored, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError(s.repo.EntityType(), id)
	}

	c := stored.Clone()
	if in.Name != nil {
		if err := c.ChangeName(*in.Name, domainsvcs.ValidateCategory); err != nil {
			return nil, err
		}
	}
	switch {
	case in.ClearDescription:
		if err := c.ChangeDescription(nil, domainsvcs.ValidateCategory); err != nil {
			return nil, err
		}
	case in.Description != nil:
		d := *in.Description
		if err := c.ChangeDescription(&d, domainsvcs.ValidateCategory); err != nil {
			return nil, err
		}
	}
	if in.IsActive != nil {
		if *in.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a Category by ID. Returns a *domain.NotFoundError when no
// category matches.
func (s *CategoryService) Delete(ctx context.Context, rawID string) (err error) {
	start := time.Now()
	defer func() { s.metrics.Record(ctx, "delete", start, err) }()

	id, err := domain.ParseUuid(rawID)
	if err != nil {
		return fmt.Errorf("delete category %q: %w", rawID, err)
	}

	s.mu.Lock()
	err = s.repo.Delete(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.invalidate(ctx, id)
	eventID := uuid.New()
	s.publish(ctx, events.TopicCategoryDeleted, eventID, events.CategoryDeletedEvent{
		EventID:    eventID,
		Version:    events.Version,
		CategoryID: id.String(),
		OccurredAt: s.now(),
	})
	return nil
}

// Seed stores n demo categories named "Category 0" to "Category n-1". No
// events are published for seeded data.
func (s *CategoryService) Seed(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	batch := make([]*models.Category, 0, n)
	for i := range n {
		c, err := models.CreateCategory(models.CreateCategoryProps{
			Name: fmt.Sprintf("Category %d", i),
		}, domainsvcs.ValidateCategory)
		if err != nil {
			return fmt.Errorf("seed category %d: %w", i, err)
		}
		batch = append(batch, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.SaveBatch(ctx, batch); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	s.log.InfoContext(ctx, "seeded categories", "count", n)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context, id domain.Uuid) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id.String()); err != nil {
		s.log.WarnContext(ctx, "category cache invalidation failed", "category_id", id.String(), "error", err)
	}
}

func (s *CategoryService) publish(ctx context.Context, topic string, eventID uuid.UUID, payload any) {
	if s.bus == nil {
		return
	}
	msg, err := pkgevents.NewJSONMessage(eventID, events.Version, payload)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build event", "topic", topic, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}

func (s *CategoryService) fromCache(ctx context.Context, id domain.Uuid) (*models.Category, error) {
	cached, err := s.cache.Get(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return fromCached(cached)
}

func toCached(c *models.Category) *pkgcache.CachedCategory {
	return &pkgcache.CachedCategory{
		ID:          c.CategoryID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func fromCached(cc *pkgcache.CachedCategory) (*models.Category, error) {
	id, err := domain.ParseUuid(cc.ID)
	if err != nil {
		return nil, err
	}
	return &models.Category{
		CategoryID:  id,
		Name:        cc.Name,
		Description: cc.Description,
		IsActive:    cc.IsActive,
		CreatedAt:   cc.CreatedAt,
	}, nil
}
