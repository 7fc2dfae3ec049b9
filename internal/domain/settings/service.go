package settings

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/utils"
)

type Service struct {
	repo     *Repo
	validate *validator.Validate
	log      *logrus.Entry
}

func NewService(repo *Repo) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      logrus.WithField("context", "settings"),
	}
}

func (s *Service) WhatsAppNumbers(ctx context.Context) (WhatsAppNumbers, error) {
	return s.repo.GetWhatsAppNumbers(ctx)
}

// UpdateWhatsAppNumbers merges the provided numbers, normalizing each to a
// single leading + form.
func (s *Service) UpdateWhatsAppNumbers(ctx context.Context, in WhatsAppNumbersInput) (WhatsAppNumbers, error) {
	data := map[string]any{}
	if in.Products != nil {
		data["products"] = utils.NormalizePhone(*in.Products)
	}
	if in.Crafts != nil {
		data["crafts"] = utils.NormalizePhone(*in.Crafts)
	}
	if len(data) == 0 {
		return WhatsAppNumbers{}, fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	if err := s.repo.SetWhatsAppNumbers(ctx, data); err != nil {
		return WhatsAppNumbers{}, err
	}
	s.log.Info("whatsapp numbers updated")
	return s.repo.GetWhatsAppNumbers(ctx)
}

func (s *Service) ContactInfo(ctx context.Context) (ContactInfo, error) {
	return s.repo.GetContactInfo(ctx)
}

// UpdateContactInfo merges the partial into the singleton document; the
// document is never replaced wholesale so partial admin edits keep the rest.
func (s *Service) UpdateContactInfo(ctx context.Context, in ContactInfoInput) (ContactInfo, error) {
	if err := s.validate.Struct(in); err != nil {
		return ContactInfo{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	data := map[string]any{}
	if in.Phone != nil {
		data["phone"] = *in.Phone
	}
	if in.Email != nil {
		data["email"] = *in.Email
	}
	if in.Address != nil {
		data["address"] = *in.Address
	}
	if in.AddressAr != nil {
		data["addressAr"] = *in.AddressAr
	}
	if in.WhatsappNumber != nil {
		data["whatsappNumber"] = utils.NormalizePhone(*in.WhatsappNumber)
	}
	if len(data) == 0 {
		return ContactInfo{}, fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	if err := s.repo.SetContactInfo(ctx, data); err != nil {
		return ContactInfo{}, err
	}
	s.log.Info("contact info updated")
	return s.repo.GetContactInfo(ctx)
}

func (s *Service) BusinessHours(ctx context.Context) (BusinessHours, error) {
	return s.repo.GetBusinessHours(ctx)
}

func (s *Service) UpdateBusinessHours(ctx context.Context, in BusinessHoursInput) (BusinessHours, error) {
	if err := s.validate.Struct(in); err != nil {
		return BusinessHours{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	periods, err := NormalizePeriods(in.Periods)
	if err != nil {
		return BusinessHours{}, err
	}
	if err := s.repo.SetBusinessHours(ctx, BusinessHours{Periods: periods}); err != nil {
		return BusinessHours{}, err
	}
	s.log.Info("business hours updated")
	return s.repo.GetBusinessHours(ctx)
}

// NormalizePeriods validates day keys and HH:MM times and clears the time
// fields of closed periods. Input order is preserved.
func NormalizePeriods(in []BusinessPeriod) ([]BusinessPeriod, error) {
	out := make([]BusinessPeriod, 0, len(in))
	for i, p := range in {
		start, ok := ParseDay(string(p.Start))
		if !ok {
			return nil, fmt.Errorf("%w: period %d: invalid start day %q", ErrBadRequest, i, p.Start)
		}
		end, ok := ParseDay(string(p.End))
		if !ok {
			return nil, fmt.Errorf("%w: period %d: invalid end day %q", ErrBadRequest, i, p.End)
		}
		p.Start, p.End = start, end

		if p.IsClosed {
			p.Open, p.Close = "", ""
		} else {
			if !utils.ValidHHMM(p.Open) {
				return nil, fmt.Errorf("%w: period %d: invalid open time %q", ErrBadRequest, i, p.Open)
			}
			if !utils.ValidHHMM(p.Close) {
				return nil, fmt.Errorf("%w: period %d: invalid close time %q", ErrBadRequest, i, p.Close)
			}
		}
		out = append(out, p)
	}
	return out, nil
}
