package engine

import (
	"log/slog"
	"math"
	"time"

	"github.com/synthd/synthd/pkg/enhance"
	"github.com/synthd/synthd/pkg/entity"
	"github.com/synthd/synthd/pkg/faker"
	"github.com/synthd/synthd/pkg/logging"
)

// Factory builds single entity instances from the fake value provider.
// User records optionally pass through a field enhancer; enhancement
// failures fall back to the unmodified base record and are logged, never
// propagated.
type Factory struct {
	faker    *faker.Faker
	enhancer enhance.Enhancer
	log      *slog.Logger
}

// NewFactory creates a Factory. A nil enhancer means pass-through; a nil
// logger discards output.
func NewFactory(f *faker.Faker, e enhance.Enhancer, log *slog.Logger) *Factory {
	if e == nil {
		e = enhance.Noop{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Factory{faker: f, enhancer: e, log: log}
}

// User builds a user record with enhanced fields where configured.
func (f *Factory) User() *entity.User {
	u := &entity.User{
		Name:      f.faker.Name(),
		Email:     f.faker.Email(),
		Address:   f.faker.Address(),
		Phone:     f.faker.Phone(),
		BirthDate: f.faker.DateOfBirth(),
		IsActive:  f.faker.Boolean(),
		CreatedAt: time.Now().UTC(),
	}

	base := userRecord(u)
	out, err := f.enhancer.Enhance(base)
	if err != nil {
		f.log.Warn("field enhancement failed, keeping base record",
			"enhancer", f.enhancer.Name(), "error", err)
		return u
	}
	applyUserRecord(u, base, out)
	return u
}

// Product builds a product record.
func (f *Factory) Product() *entity.Product {
	return &entity.Product{
		Name:          f.faker.Word(),
		Description:   f.faker.Paragraph(),
		Price:         f.faker.Float(2, true),
		Category:      f.faker.Word(),
		StockQuantity: f.faker.IntRange(0, 1000),
		CreatedAt:     time.Now().UTC(),
	}
}

// Order builds an order for the given user and product. The caller supplies
// the product's current price already resolved from the store; the factory
// never queries storage itself. TotalPrice is the frozen snapshot
// quantity x price.
func (f *Factory) Order(userID, productID int64, price float64) *entity.Order {
	quantity := f.faker.IntRange(1, 10)
	statuses := entity.Statuses()

	return &entity.Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: roundPrice(float64(quantity) * price),
		Status:     statuses[f.faker.PickIndex(len(statuses))],
		CreatedAt:  time.Now().UTC(),
	}
}

// userRecord exposes the enhanceable base fields as a record map. Identity
// and lifecycle fields (id, created_at) are deliberately excluded.
func userRecord(u *entity.User) map[string]any {
	return map[string]any{
		"name":       u.Name,
		"email":      u.Email,
		"address":    u.Address,
		"phone":      u.Phone,
		"birth_date": u.BirthDate,
		"is_active":  u.IsActive,
	}
}

// applyUserRecord writes enhanced fields back onto the user. Any field the
// enhancer dropped or returned with the wrong type is taken verbatim from
// the base record.
func applyUserRecord(u *entity.User, base, rec map[string]any) {
	u.Name = stringField(rec, base, "name")
	u.Email = stringField(rec, base, "email")
	u.Address = stringField(rec, base, "address")
	u.Phone = stringField(rec, base, "phone")
	u.BirthDate = timeField(rec, base, "birth_date")
	u.IsActive = boolField(rec, base, "is_active")
}

func stringField(rec, base map[string]any, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	v, _ := base[key].(string)
	return v
}

func boolField(rec, base map[string]any, key string) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	v, _ := base[key].(bool)
	return v
}

func timeField(rec, base map[string]any, key string) time.Time {
	if v, ok := rec[key].(time.Time); ok {
		return v
	}
	v, _ := base[key].(time.Time)
	return v
}

// roundPrice rounds a monetary amount to two decimal places.
func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
