package usecase

import (
	"context"

	"foodhub-support/config"
	"foodhub-support/internal/guardrail"
	"foodhub-support/internal/model"
	"foodhub-support/internal/order"
	"foodhub-support/internal/order/repository"
	"foodhub-support/internal/router"
	"foodhub-support/internal/session"
	"foodhub-support/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockOrderRepo serves orders from a map and counts lookups.
type mockOrderRepo struct {
	orders   map[string]model.OrderFact // keyed by order id
	failures int                        // first N GetOrder calls fail
	calls    int
	lastOpt  repository.GetOrderOptions
}

func (m *mockOrderRepo) GetOrder(ctx context.Context, opt repository.GetOrderOptions) (model.OrderFact, error) {
	m.calls++
	m.lastOpt = opt
	if m.failures > 0 {
		m.failures--
		return model.OrderFact{}, repository.ErrStoreUnavailable
	}
	fact, ok := m.orders[opt.OrderID]
	if !ok || fact.CustomerID != opt.CustomerID {
		return model.OrderFact{}, order.ErrOrderNotFound
	}
	return fact, nil
}

func (m *mockOrderRepo) Ping(ctx context.Context) error { return nil }

// mockGenerator is a scriptable LLM stand-in.
type mockGenerator struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock", ModelName: "mock-model"}, nil
}

// newTestUseCase wires a usecase over real guardrail, router, and session
// components with mocked storage and generation.
func newTestUseCase(repo *mockOrderRepo, llm *mockGenerator) (*implUseCase, *session.Manager) {
	l := &mockLogger{}
	sessions := session.New(l, config.SessionConfig{})
	uc := New(
		l,
		guardrail.New(l, config.GuardrailConfig{}),
		router.New(l),
		sessions,
		repo,
		llm,
		"support@foodhub.com or call 1-800-FOODHUB",
		10,
	)
	return uc, sessions
}
