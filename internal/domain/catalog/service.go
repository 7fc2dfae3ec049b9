package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/store"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/utils"
)

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "All"

var placeholderImages = map[ItemType]string{
	TypeProducts: "/images/placeholder-product.png",
	TypeCrafts:   "/images/placeholder-craft.png",
}

// ItemStore is the slice of the collection adapter the service uses,
// satisfied by *store.Collection[Item, *Item].
type ItemStore interface {
	GetByID(ctx context.Context, id string) (*Item, error)
	Add(ctx context.Context, data map[string]any) (string, error)
	Update(ctx context.Context, id string, data map[string]any) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, filters []store.Filter, order *store.Order, limit int) ([]Item, error)
}

// Store is the persistence surface the service depends on; *Repo satisfies it.
type Store interface {
	Items(typ ItemType) ItemStore
	Categories(ctx context.Context, typ ItemType) ([]Category, error)
	CreateCategory(ctx context.Context, typ ItemType, id string, c Category) (*Category, error)
	DeleteCategory(ctx context.Context, typ ItemType, id string) error
}

type Service struct {
	repo     Store
	validate *validator.Validate
	log      *logrus.Entry
}

func NewService(repo Store) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      logrus.WithField("context", "catalog"),
	}
}

// ListItems returns items of one type, optionally filtered by category
// (case-insensitive exact match; empty or "All" means no filter).
func (s *Service) ListItems(ctx context.Context, typ ItemType, category string) ([]Item, error) {
	items, err := s.repo.Items(typ).Query(ctx, nil, &store.Order{Field: "createdAt", Desc: true}, 0)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(items, category), nil
}

func (s *Service) GetItem(ctx context.Context, typ ItemType, id string) (*Item, error) {
	item, err := s.repo.Items(typ).GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) CreateItem(ctx context.Context, typ ItemType, in ItemInput) (*Item, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	data := itemData(in)
	if in.Image == "" {
		data["image"] = placeholderImages[typ]
	}
	if _, ok := data["rating"]; !ok {
		data["rating"] = 0.0
	}
	if err := checkPrice(data); err != nil {
		return nil, err
	}

	id, err := s.repo.Items(typ).Add(ctx, data)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"type": typ, "id": id}).Info("item created")
	return s.GetItem(ctx, typ, id)
}

func (s *Service) UpdateItem(ctx context.Context, typ ItemType, id string, in ItemInput) (*Item, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if _, err := s.GetItem(ctx, typ, id); err != nil {
		return nil, err
	}

	data := itemData(in)
	if err := checkPrice(data); err != nil {
		return nil, err
	}
	if err := s.repo.Items(typ).Update(ctx, id, data); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, typ, id)
}

func (s *Service) DeleteItem(ctx context.Context, typ ItemType, id string) error {
	err := s.repo.Items(typ).Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: item %s", ErrNotFound, id)
	}
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"type": typ, "id": id}).Info("item deleted")
	return nil
}

func (s *Service) Categories(ctx context.Context, typ ItemType) ([]Category, error) {
	return s.repo.Categories(ctx, typ)
}

func (s *Service) CreateCategory(ctx context.Context, typ ItemType, in CategoryInput) (*Category, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	id := utils.Slugify(in.Name)
	if id == "" {
		id = uuid.NewString()
	}
	return s.repo.CreateCategory(ctx, typ, id, Category{
		Name:   in.Name,
		NameAr: in.NameAr,
		Type:   string(typ),
	})
}

func (s *Service) DeleteCategory(ctx context.Context, typ ItemType, id string) error {
	err := s.repo.DeleteCategory(ctx, typ, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: category %s", ErrNotFound, id)
	}
	return err
}

// FilterByCategory keeps items whose category matches the selected one,
// ignoring case and surrounding whitespace. Empty selection and the "All"
// pseudo-category pass everything through.
func FilterByCategory(items []Item, category string) []Item {
	want := utils.NormalizeNameLower(category)
	if want == "" || want == utils.NormalizeNameLower(AllCategories) {
		return items
	}
	out := []Item{}
	for _, it := range items {
		if utils.NormalizeNameLower(it.Category) == want {
			out = append(out, it)
		}
	}
	return out
}

// AvailableCategories derives the filter chips from the loaded item set:
// distinct category values in order of first appearance, after the "All"
// pseudo-category.
func AvailableCategories(items []Item) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, it := range items {
		key := utils.NormalizeNameLower(it.Category)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it.Category)
	}
	return out
}

func itemData(in ItemInput) map[string]any {
	data := map[string]any{
		"name":              in.Name,
		"nameAr":            in.NameAr,
		"firstDescription":  in.FirstDescription,
		"secondDescription": in.SecondDescription,
		"description":       in.Description,
		"descriptionAr":     in.DescriptionAr,
		"priceValue":        in.PriceValue,
		"priceCurrency":     in.PriceCurrency,
		"category":          in.Category,
		"image":             in.Image,
		"seller":            in.Seller,
	}
	if in.Rating != 0 {
		data["rating"] = in.Rating
	}
	return store.Sanitize(data)
}

func checkPrice(data map[string]any) error {
	if v, ok := data["priceValue"].(float64); ok && v < 0 {
		return fmt.Errorf("%w: priceValue must not be negative", ErrBadRequest)
	}
	return nil
}
