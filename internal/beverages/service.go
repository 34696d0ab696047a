package beverages

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"
	"github.com/dmitrijs2005/wellkeeper/internal/models"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
	"github.com/google/uuid"
)

// Service owns the beverage_log, favorite_beverages and custom_beverages keys.
type Service struct {
	store  kv.Store
	cal    timex.Calendar
	logger logging.Logger

	mu sync.Mutex
}

func NewService(store kv.Store, cal timex.Calendar, logger logging.Logger) *Service {
	return &Service{
		store:  store,
		cal:    cal,
		logger: logger.With("store", "beverages"),
	}
}

func (s *Service) log(ctx context.Context) (models.BeverageLog, error) {
	l, err := kv.LoadJSON(ctx, s.store, common.KeyBeverageLog, models.BeverageLog{})
	if err != nil {
		s.logger.Error(ctx, "failed to load beverage log", "err", err)
		return nil, err
	}
	if l == nil {
		l = models.BeverageLog{}
	}
	return l, nil
}

func (s *Service) saveLog(ctx context.Context, l models.BeverageLog) error {
	if err := kv.SaveJSON(ctx, s.store, common.KeyBeverageLog, l); err != nil {
		s.logger.Error(ctx, "failed to save beverage log", "err", err)
		return err
	}
	return nil
}

func (s *Service) customTypes(ctx context.Context) ([]models.BeverageType, error) {
	c, err := kv.LoadJSON(ctx, s.store, common.KeyCustomBeverages, []models.BeverageType{})
	if err != nil {
		s.logger.Error(ctx, "failed to load custom beverages", "err", err)
		return nil, err
	}
	return c, nil
}

// AllBeverages returns built-in types followed by custom ones.
func (s *Service) AllBeverages(ctx context.Context) ([]models.BeverageType, error) {
	custom, err := s.customTypes(ctx)
	if err != nil {
		return nil, err
	}
	return append(Builtin(), custom...), nil
}

// Beverage resolves a type id against the built-in and custom catalog.
func (s *Service) Beverage(ctx context.Context, id string) (models.BeverageType, error) {
	all, err := s.AllBeverages(ctx)
	if err != nil {
		return models.BeverageType{}, err
	}
	t, ok := findType(all, id)
	if !ok {
		return models.BeverageType{}, common.ErrNotFound
	}
	return t, nil
}

// LogBeverage records amount ml of beverage typeID now.
func (s *Service) LogBeverage(ctx context.Context, typeID string, amount int) (*models.BeverageLogEntry, error) {
	return s.LogBeverageAt(ctx, typeID, amount, s.cal.Now())
}

// LogBeverageAt records amount ml of beverage typeID at the given instant,
// filed under that instant's local day.
func (s *Service) LogBeverageAt(ctx context.Context, typeID string, amount int, at time.Time) (*models.BeverageLogEntry, error) {
	if amount <= 0 {
		return nil, common.Validationf("amount must be positive, got %d", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bt, err := s.Beverage(ctx, typeID)
	if err != nil {
		return nil, err
	}

	l, err := s.log(ctx)
	if err != nil {
		return nil, err
	}

	day := s.cal.DateOf(at)
	entry := models.BeverageLogEntry{
		ID:                   uuid.NewString(),
		BeverageID:           bt.ID,
		BeverageName:         bt.Name,
		Amount:               amount,
		HydrationCoefficient: bt.HydrationCoefficient,
		EffectiveHydration:   float64(amount) * bt.HydrationCoefficient,
		Timestamp:            at.In(s.cal.Location()),
		Date:                 day,
	}
	l[day] = append(l[day], entry)

	if err := s.saveLog(ctx, l); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "beverage logged", "date", day.String(), "beverage", bt.ID, "amount", amount)
	return &entry, nil
}

// DeleteEntry removes the entry with the given id from whichever day holds it.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.log(ctx)
	if err != nil {
		return err
	}

	for day, entries := range l {
		i := slices.IndexFunc(entries, func(e models.BeverageLogEntry) bool { return e.ID == id })
		if i < 0 {
			continue
		}
		entries = slices.Delete(entries, i, i+1)
		if len(entries) == 0 {
			delete(l, day)
		} else {
			l[day] = entries
		}
		return s.saveLog(ctx, l)
	}
	return common.ErrNotFound
}

// Entries returns the entries of date in logging order.
func (s *Service) Entries(ctx context.Context, date timex.Date) ([]models.BeverageLogEntry, error) {
	l, err := s.log(ctx)
	if err != nil {
		return nil, err
	}
	return l[date], nil
}

// DailySummary aggregates the entries of date; see Summarize.
func (s *Service) DailySummary(ctx context.Context, date timex.Date) (models.DailyBeverageSummary, error) {
	entries, err := s.Entries(ctx, date)
	if err != nil {
		return models.DailyBeverageSummary{}, err
	}
	return Summarize(date, entries), nil
}

// Favorites returns favourite type ids, or the defaults if never written.
func (s *Service) Favorites(ctx context.Context) ([]string, error) {
	f, err := kv.LoadJSON(ctx, s.store, common.KeyFavoriteBeverages, slices.Clone(defaultFavorites))
	if err != nil {
		s.logger.Error(ctx, "failed to load favorites", "err", err)
		return nil, err
	}
	return f, nil
}

// ToggleFavorite adds or removes id and reports whether it is now a favourite.
// Only catalog types can be added; any id can be removed.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}

	var member bool
	if i := slices.Index(favs, id); i >= 0 {
		favs = slices.Delete(favs, i, i+1)
	} else {
		if _, err := s.Beverage(ctx, id); err != nil {
			return false, err
		}
		favs = append(favs, id)
		member = true
	}

	if err := s.saveFavorites(ctx, favs); err != nil {
		return false, err
	}
	return member, nil
}

func (s *Service) saveFavorites(ctx context.Context, favs []string) error {
	if err := kv.SaveJSON(ctx, s.store, common.KeyFavoriteBeverages, favs); err != nil {
		s.logger.Error(ctx, "failed to save favorites", "err", err)
		return err
	}
	return nil
}

// CustomBeverage describes a user-defined type.
type CustomBeverage struct {
	Name                 string
	Category             models.BeverageCategory
	HydrationCoefficient float64
	Caffeine             models.Caffeine
	Sugary               bool
	DefaultAmount        int
}

func (c CustomBeverage) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return common.Validationf("name is required")
	}
	if c.HydrationCoefficient < -1 || c.HydrationCoefficient > 1 {
		return common.Validationf("hydration coefficient must be within [-1, 1], got %g", c.HydrationCoefficient)
	}
	if c.DefaultAmount <= 0 {
		return common.Validationf("default amount must be positive, got %d", c.DefaultAmount)
	}
	return nil
}

// AddCustomBeverage stores a new custom type and returns it.
func (s *Service) AddCustomBeverage(ctx context.Context, c CustomBeverage) (*models.BeverageType, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Category == "" {
		c.Category = models.CategoryOther
	}
	if c.Caffeine == "" {
		c.Caffeine = models.CaffeineNone
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	custom, err := s.customTypes(ctx)
	if err != nil {
		return nil, err
	}

	bt := models.BeverageType{
		ID:                   "custom_" + uuid.NewString(),
		Name:                 strings.TrimSpace(c.Name),
		Category:             c.Category,
		HydrationCoefficient: c.HydrationCoefficient,
		Caffeine:             c.Caffeine,
		Sugary:               c.Sugary,
		DefaultAmount:        c.DefaultAmount,
		Custom:               true,
	}
	custom = append(custom, bt)

	if err := kv.SaveJSON(ctx, s.store, common.KeyCustomBeverages, custom); err != nil {
		s.logger.Error(ctx, "failed to save custom beverages", "err", err)
		return nil, err
	}
	return &bt, nil
}

// DeleteCustomBeverage removes a custom type and drops it from favourites.
// Logged entries keep their name and coefficient snapshot.
func (s *Service) DeleteCustomBeverage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	custom, err := s.customTypes(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(custom, func(t models.BeverageType) bool { return t.ID == id })
	if i < 0 {
		return common.ErrNotFound
	}
	custom = slices.Delete(custom, i, i+1)

	if err := kv.SaveJSON(ctx, s.store, common.KeyCustomBeverages, custom); err != nil {
		s.logger.Error(ctx, "failed to save custom beverages", "err", err)
		return err
	}

	favs, err := s.Favorites(ctx)
	if err != nil {
		return err
	}
	if j := slices.Index(favs, id); j >= 0 {
		return s.saveFavorites(ctx, slices.Delete(favs, j, j+1))
	}
	return nil
}

// Stats summarises entries dated within the last days days, today included.
func (s *Service) Stats(ctx context.Context, days int) (models.BeverageStats, error) {
	if days <= 0 {
		return models.BeverageStats{}, common.Validationf("days must be positive, got %d", days)
	}
	l, err := s.log(ctx)
	if err != nil {
		return models.BeverageStats{}, err
	}
	all, err := s.AllBeverages(ctx)
	if err != nil {
		return models.BeverageStats{}, err
	}
	return ComputeStats(l, all, s.cal.Today(), days), nil
}
