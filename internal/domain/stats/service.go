package stats

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Overview is the admin dashboard card data.
type Overview struct {
	Products   int `json:"products"`
	Crafts     int `json:"crafts"`
	Categories int `json:"categories"`
	Messages   int `json:"messages"`
}

type Service struct {
	fs *firestore.Client
}

func NewService(fs *firestore.Client) *Service {
	return &Service{fs: fs}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}
	var err error

	if out.Products, err = s.count(ctx, s.fs.Collection("products").Query); err != nil {
		return nil, err
	}
	if out.Crafts, err = s.count(ctx, s.fs.Collection("crafts").Query); err != nil {
		return nil, err
	}
	if out.Messages, err = s.count(ctx, s.fs.Collection("contacts").Query); err != nil {
		return nil, err
	}

	for _, typ := range []string{"products", "crafts"} {
		n, err := s.count(ctx, s.fs.Collection("categories").Doc(typ).Collection("items").Query)
		if err != nil {
			return nil, err
		}
		out.Categories += n
	}
	return out, nil
}

// count iterates keys only; the catalog is small enough that an aggregation
// pipeline would be overkill.
func (s *Service) count(ctx context.Context, q firestore.Query) (int, error) {
	it := q.Select().Documents(ctx)
	n := 0
	for {
		_, err := it.Next()
		if err == iterator.Done {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}
