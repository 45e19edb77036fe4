package tests

import (
	"storefront/pkg/store/domain/model"
	"storefront/pkg/store/domain/service"
)

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

type fakeKeyValueStore struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeKeyValueStore() *fakeKeyValueStore {
	return &fakeKeyValueStore{data: make(map[string]string)}
}

func (f *fakeKeyValueStore) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeKeyValueStore) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.sets++
	return nil
}

// fixedSampler cycles through a predetermined sequence so seeded rating
// counts and values are exact.
type fixedSampler struct {
	values []float64
	next   int
}

func (s *fixedSampler) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	value := s.values[s.next%len(s.values)]
	s.next++
	return value
}

func phone(id string, price int64) model.Product {
	return model.Product{
		ID:       id,
		Name:     id,
		Category: model.CategoryIPhone,
		Price:    price,
	}
}

func accessory(id string, price int64) model.Product {
	return model.Product{
		ID:       id,
		Name:     id,
		Category: model.CategoryAccessory,
		Price:    price,
	}
}
