package contact

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/store"
)

type fakeMessages struct {
	deleteErr error
	added     map[string]any
}

func (f *fakeMessages) Query(context.Context, []store.Filter, *store.Order, int) ([]Message, error) {
	return nil, nil
}

func (f *fakeMessages) Add(_ context.Context, data map[string]any) (string, error) {
	f.added = data
	return "msg-1", nil
}

func (f *fakeMessages) GetByID(_ context.Context, id string) (*Message, error) {
	return &Message{ID: id, Name: f.added["name"].(string)}, nil
}

func (f *fakeMessages) Delete(context.Context, string) error { return f.deleteErr }

func newTestService(col messageStore) *Service {
	return &Service{col: col, validate: validator.New(), log: logrus.WithField("context", "contact")}
}

func TestCreateMessage(t *testing.T) {
	col := &fakeMessages{}
	s := newTestService(col)

	msg, err := s.Create(context.Background(), MessageInput{
		Name:    "  Esraa ",
		Email:   "esraa@example.com",
		Message: "Is the kunafa tray available on Fridays?",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "Esraa", col.added["name"])
}

func TestCreateMessageValidation(t *testing.T) {
	s := newTestService(&fakeMessages{})

	_, err := s.Create(context.Background(), MessageInput{Email: "esraa@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = s.Create(context.Background(), MessageInput{Name: "Esraa", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteMessageMissingID(t *testing.T) {
	s := newTestService(&fakeMessages{deleteErr: store.ErrNotFound})

	err := s.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
