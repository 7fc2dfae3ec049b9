package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/store"
)

type fakeItems struct {
	getErr    error
	deleteErr error
	deleted   []string
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*Item, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &Item{ID: id, Name: "Kunafa"}, nil
}

func (f *fakeItems) Add(context.Context, map[string]any) (string, error) { return "new-id", nil }

func (f *fakeItems) Update(context.Context, string, map[string]any) error { return nil }

func (f *fakeItems) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeItems) Query(context.Context, []store.Filter, *store.Order, int) ([]Item, error) {
	return nil, nil
}

type fakeStore struct {
	items             *fakeItems
	deleteCategoryErr error
}

func (f *fakeStore) Items(ItemType) ItemStore { return f.items }

func (f *fakeStore) Categories(context.Context, ItemType) ([]Category, error) { return nil, nil }

func (f *fakeStore) CreateCategory(_ context.Context, _ ItemType, id string, c Category) (*Category, error) {
	c.ID = id
	return &c, nil
}

func (f *fakeStore) DeleteCategory(context.Context, ItemType, string) error {
	return f.deleteCategoryErr
}

func TestDeleteItemMissingID(t *testing.T) {
	s := NewService(&fakeStore{items: &fakeItems{deleteErr: store.ErrNotFound}})

	err := s.DeleteItem(context.Background(), TypeProducts, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItemExisting(t *testing.T) {
	items := &fakeItems{}
	s := NewService(&fakeStore{items: items})

	assert.NoError(t, s.DeleteItem(context.Background(), TypeProducts, "item-1"))
	assert.Equal(t, []string{"item-1"}, items.deleted)
}

func TestGetItemMissingID(t *testing.T) {
	s := NewService(&fakeStore{items: &fakeItems{getErr: store.ErrNotFound}})

	_, err := s.GetItem(context.Background(), TypeCrafts, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryMissingID(t *testing.T) {
	s := NewService(&fakeStore{items: &fakeItems{}, deleteCategoryErr: store.ErrNotFound})

	err := s.DeleteCategory(context.Background(), TypeProducts, "no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}
