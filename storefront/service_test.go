package storefront

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/storefront/config"
	"encore.app/storefront/mocks/business/blog_business"
	"encore.app/storefront/mocks/business/catalog_business"
	"encore.app/storefront/mocks/business/checkout_business"
	"encore.app/storefront/mocks/business/email_business"
	"encore.app/storefront/mocks/business/order_business"
	"encore.app/storefront/monitor"
)

type serviceMocks struct {
	checkout *checkout_business.MockBusiness
	orders   *order_business.MockBusiness
	emails   *email_business.MockBusiness
	catalog  *catalog_business.MockBusiness
	blog     *blog_business.MockBusiness
	temporal *mocks.Client
	sink     *recordingSink
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		checkout: checkout_business.NewMockBusiness(ctrl),
		orders:   order_business.NewMockBusiness(ctrl),
		emails:   email_business.NewMockBusiness(ctrl),
		catalog:  catalog_business.NewMockBusiness(ctrl),
		blog:     blog_business.NewMockBusiness(ctrl),
		temporal: mocks.NewClient(t),
		sink:     &recordingSink{},
	}

	s := &Service{
		checkout: m.checkout,
		orders:   m.orders,
		emails:   m.emails,
		catalog:  m.catalog,
		blog:     m.blog,
		temporal: m.temporal,
		monitor:  monitor.New(monitor.Options{Environment: monitor.EnvDevelopment, Sinks: []monitor.Sink{m.sink}}),
		cfg:      config.Defaults(),
	}

	originalRunAsync := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	t.Cleanup(func() { runAsync = originalRunAsync })

	return s, m
}

// withCaller makes caller the authenticated user for the rest of the test.
func withCaller(t *testing.T, caller *AuthData) {
	t.Helper()
	original := currentCaller
	currentCaller = func() *AuthData { return caller }
	t.Cleanup(func() { currentCaller = original })
}

func customer(id uuid.UUID) *AuthData {
	return &AuthData{UserID: id.String(), Email: "ayesha@example.in", Role: "authenticated"}
}

func admin() *AuthData {
	return &AuthData{UserID: uuid.NewString(), Email: "ops@naaz.in", Role: roleAdmin}
}

type recordingSink struct {
	mu      sync.Mutex
	entries []monitor.LogEntry
}

func (r *recordingSink) Write(_ context.Context, e monitor.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingSink) byLevel(level monitor.Level) []monitor.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []monitor.LogEntry
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
