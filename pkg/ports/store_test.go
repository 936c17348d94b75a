package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// MockStore is a map-backed ResultStore used to exercise the contract itself.
type MockStore struct {
	data map[string]domain.Result
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]domain.Result),
	}
}

func (m *MockStore) Save(ctx context.Context, key string, result domain.Result) error {
	m.data[key] = result
	return nil
}

func (m *MockStore) Load(ctx context.Context, key string) (domain.Result, error) {
	result, ok := m.data[key]
	if !ok {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return result, nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunResultStoreContract(t, NewMockStore())
}

func TestRenderFunc(t *testing.T) {
	var gotLine int
	var gotText string
	var sink ports.RenderSink = ports.RenderFunc(func(line int, text string) {
		gotLine, gotText = line, text
	})

	sink.Render(2, "010")

	if gotLine != 2 || gotText != "010" {
		t.Errorf("RenderFunc did not forward call: got (%d, %q)", gotLine, gotText)
	}
}
