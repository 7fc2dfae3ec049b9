package settings

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Repo reads and writes the three fixed singleton documents. Absent
// documents resolve to default shapes; only real failures return errors.
type Repo struct {
	fs  *firestore.Client
	log *logrus.Entry
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs, log: logrus.WithField("context", "settings")}
}

func (r *Repo) whatsappRef() *firestore.DocumentRef {
	return r.fs.Collection("whatsapp").Doc("numbers")
}

func (r *Repo) contactRef() *firestore.DocumentRef {
	return r.fs.Collection("contactInfo").Doc("contact")
}

func (r *Repo) hoursRef() *firestore.DocumentRef {
	return r.fs.Collection("businessHours").Doc("hours")
}

func (r *Repo) GetWhatsAppNumbers(ctx context.Context) (WhatsAppNumbers, error) {
	out := DefaultWhatsAppNumbers()
	err := getInto(ctx, r.whatsappRef(), &out)
	return out, err
}

func (r *Repo) SetWhatsAppNumbers(ctx context.Context, data map[string]any) error {
	_, err := r.whatsappRef().Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *Repo) GetContactInfo(ctx context.Context) (ContactInfo, error) {
	out := DefaultContactInfo()
	err := getInto(ctx, r.contactRef(), &out)
	return out, err
}

func (r *Repo) SetContactInfo(ctx context.Context, data map[string]any) error {
	_, err := r.contactRef().Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *Repo) GetBusinessHours(ctx context.Context) (BusinessHours, error) {
	out := DefaultBusinessHours()
	err := getInto(ctx, r.hoursRef(), &out)
	return out, err
}

// SetBusinessHours replaces the periods wholesale; periods are an ordered
// list, merging them field-wise would interleave revisions.
func (r *Repo) SetBusinessHours(ctx context.Context, h BusinessHours) error {
	_, err := r.hoursRef().Set(ctx, h)
	return err
}

// docGetter is the read surface of a document ref, narrowed so the absent
// document fallback can be exercised without a live backend.
type docGetter interface {
	Get(ctx context.Context) (*firestore.DocumentSnapshot, error)
}

// getInto decodes the document into dst, leaving the default value in place
// when the document does not exist.
func getInto(ctx context.Context, ref docGetter, dst any) error {
	doc, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return doc.DataTo(dst)
}

// WatchWhatsAppNumbers attaches a snapshot listener; fn receives the default
// shape while the document is absent. The returned function detaches it.
func (r *Repo) WatchWhatsAppNumbers(ctx context.Context, fn func(WhatsAppNumbers)) func() {
	return watch(r, ctx, r.whatsappRef(), DefaultWhatsAppNumbers, fn)
}

func (r *Repo) WatchContactInfo(ctx context.Context, fn func(ContactInfo)) func() {
	return watch(r, ctx, r.contactRef(), DefaultContactInfo, fn)
}

func (r *Repo) WatchBusinessHours(ctx context.Context, fn func(BusinessHours)) func() {
	return watch(r, ctx, r.hoursRef(), DefaultBusinessHours, fn)
}

func watch[T any](r *Repo, ctx context.Context, ref *firestore.DocumentRef, def func() T, fn func(T)) func() {
	ctx, cancel := context.WithCancel(ctx)
	it := ref.Snapshots(ctx)

	go func() {
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.log.WithError(err).WithField("doc", ref.Path).Warn("settings listener stopped")
				}
				return
			}
			v := def()
			if snap.Exists() {
				if err := snap.DataTo(&v); err != nil {
					r.log.WithError(err).WithField("doc", ref.Path).Warn("settings decode failed")
					continue
				}
			}
			fn(v)
		}
	}()

	return func() {
		cancel()
		it.Stop()
	}
}
