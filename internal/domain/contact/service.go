package contact

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/store"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

func IsErrNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

// messageStore is the collection surface the service uses, satisfied by
// *store.Collection[Message, *Message].
type messageStore interface {
	Query(ctx context.Context, filters []store.Filter, order *store.Order, limit int) ([]Message, error)
	Add(ctx context.Context, data map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	col      messageStore
	validate *validator.Validate
	log      *logrus.Entry
}

func NewService(fs *firestore.Client) *Service {
	return &Service{
		col:      store.NewCollection[Message](fs, "contacts"),
		validate: validator.New(),
		log:      logrus.WithField("context", "contact"),
	}
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.col.Query(ctx, nil, &store.Order{Field: "createdAt", Desc: true}, 0)
}

func (s *Service) Create(ctx context.Context, in MessageInput) (*Message, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	id, err := s.col.Add(ctx, map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"message": in.Message,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("id", id).Info("contact message received")
	return s.col.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.col.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: message %s", ErrNotFound, id)
	}
	return err
}
