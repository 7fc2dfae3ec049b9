package catalog

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/store"
)

type Repo struct {
	fs    *firestore.Client
	items map[ItemType]*store.Collection[Item, *Item]
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{
		fs: fs,
		items: map[ItemType]*store.Collection[Item, *Item]{
			TypeProducts: store.NewCollection[Item](fs, string(TypeProducts)),
			TypeCrafts:   store.NewCollection[Item](fs, string(TypeCrafts)),
		},
	}
}

// Items returns the collection adapter for an item type.
func (r *Repo) Items(typ ItemType) ItemStore {
	return r.items[typ]
}

// Categories live under categories/{type}/items.
func (r *Repo) categoriesRef(typ ItemType) *firestore.CollectionRef {
	return r.fs.Collection("categories").Doc(string(typ)).Collection("items")
}

func (r *Repo) Categories(ctx context.Context, typ ItemType) ([]Category, error) {
	it := r.categoriesRef(typ).OrderBy("name", firestore.Asc).Documents(ctx)
	out := []Category{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c Category
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *Repo) CreateCategory(ctx context.Context, typ ItemType, id string, c Category) (*Category, error) {
	var ref *firestore.DocumentRef
	if id != "" {
		ref = r.categoriesRef(typ).Doc(id)
	} else {
		ref = r.categoriesRef(typ).NewDoc()
	}
	if _, err := ref.Create(ctx, c); err != nil {
		return nil, err
	}
	c.ID = ref.ID
	return &c, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, typ ItemType, id string) error {
	ref := r.categoriesRef(typ).Doc(id)
	return r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err := store.EnsureExists(doc, err); err != nil {
			return err
		}
		return tx.Delete(ref)
	})
}
