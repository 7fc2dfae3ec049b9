package store

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a document id has no matching document.
var ErrNotFound = errors.New("document does not exist")

// Record is implemented by document models so decode can stamp the
// store-assigned id onto them.
type Record interface {
	SetID(id string)
}

// Filter is a single (field, operator, value) query clause, translated
// directly to the native query builder.
type Filter struct {
	Field string
	Op    string
	Value any
}

// Order is an order-by clause for Query and Subscribe.
type Order struct {
	Field string
	Desc  bool
}

// Collection is a generic CRUD adapter over one named Firestore collection.
type Collection[T any, PT interface {
	*T
	Record
}] struct {
	fs   *firestore.Client
	name string
	log  *logrus.Entry
}

func NewCollection[T any, PT interface {
	*T
	Record
}](fs *firestore.Client, name string) *Collection[T, PT] {
	return &Collection[T, PT]{
		fs:   fs,
		name: name,
		log:  logrus.WithField("collection", name),
	}
}

func (c *Collection[T, PT]) Name() string { return c.name }

// Ref exposes the underlying collection for callers that need subcollections.
func (c *Collection[T, PT]) Ref() *firestore.CollectionRef {
	return c.fs.Collection(c.name)
}

func (c *Collection[T, PT]) decode(doc *firestore.DocumentSnapshot) (T, error) {
	var v T
	if err := doc.DataTo(&v); err != nil {
		return v, err
	}
	PT(&v).SetID(doc.Ref.ID)
	return v, nil
}

func (c *Collection[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	return c.collect(c.Ref().Documents(ctx))
}

func (c *Collection[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	doc, err := c.Ref().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v, err := c.decode(doc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Add writes a new document with a store-assigned id. The payload is
// sanitized first; createdAt/updatedAt are stamped when absent.
func (c *Collection[T, PT]) Add(ctx context.Context, data map[string]any) (string, error) {
	data = Sanitize(data)
	now := time.Now().UTC()
	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = now
	}
	data["updatedAt"] = now

	ref := c.Ref().NewDoc()
	if _, err := ref.Create(ctx, data); err != nil {
		return "", err
	}
	c.log.WithField("id", ref.ID).Debug("document created")
	return ref.ID, nil
}

// Update merges the sanitized partial into an existing document.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, data map[string]any) error {
	data = Sanitize(data)
	data["updatedAt"] = time.Now().UTC()
	_, err := c.Ref().Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

// EnsureExists folds the read of a missing document into ErrNotFound, so
// transactional deletes surface one sentinel instead of backend codes.
func EnsureExists(doc *firestore.DocumentSnapshot, err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if doc == nil || !doc.Exists() {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document inside a transaction, verifying existence first
// so deleting a missing id surfaces ErrNotFound instead of silently
// succeeding.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	ref := c.Ref().Doc(id)
	return c.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err := EnsureExists(doc, err); err != nil {
			return err
		}
		return tx.Delete(ref)
	})
}

func (c *Collection[T, PT]) Query(ctx context.Context, filters []Filter, order *Order, limit int) ([]T, error) {
	return c.collect(c.build(filters, order, limit).Documents(ctx))
}

// Subscribe attaches a snapshot listener and invokes fn with the full result
// set on every change. The returned stop function detaches the listener and
// must be called on consumer teardown.
func (c *Collection[T, PT]) Subscribe(ctx context.Context, filters []Filter, order *Order, fn func([]T)) func() {
	ctx, cancel := context.WithCancel(ctx)
	it := c.build(filters, order, 0).Snapshots(ctx)

	go func() {
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					c.log.WithError(err).Warn("snapshot listener stopped")
				}
				return
			}
			items, err := c.collect(snap.Documents)
			if err != nil {
				c.log.WithError(err).Warn("snapshot decode failed")
				continue
			}
			fn(items)
		}
	}()

	return func() {
		cancel()
		it.Stop()
	}
}

func (c *Collection[T, PT]) build(filters []Filter, order *Order, limit int) firestore.Query {
	q := c.Ref().Query
	for _, f := range filters {
		q = q.Where(f.Field, f.Op, f.Value)
	}
	if order != nil {
		dir := firestore.Asc
		if order.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(order.Field, dir)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

func (c *Collection[T, PT]) collect(it *firestore.DocumentIterator) ([]T, error) {
	out := []T{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := c.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
