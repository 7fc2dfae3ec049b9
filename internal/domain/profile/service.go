package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Service struct {
	fs  *firestore.Client
	log *logrus.Entry
}

func NewService(fs *firestore.Client) *Service {
	return &Service{fs: fs, log: logrus.WithField("context", "profile")}
}

func (s *Service) users() *firestore.CollectionRef {
	return s.fs.Collection("users")
}

// GetOrCreate returns the profile for uid, creating it on first visit.
// The email comes from the verified token, not the client body.
func (s *Service) GetOrCreate(ctx context.Context, uid, email string) (*UserProfile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	doc, err := s.users().Doc(uid).Get(ctx)
	if err == nil {
		var p UserProfile
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		p.UID = uid
		return &p, nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, err
	}

	now := time.Now().UTC()
	p := UserProfile{UID: uid, Email: email, CreatedAt: now, UpdatedAt: now}
	if _, err := s.users().Doc(uid).Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.WithField("uid", uid).Info("profile created lazily")
	return &p, nil
}

// EmailForUsername resolves a login username to the account email.
func (s *Service) EmailForUsername(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", ErrBadRequest)
	}

	it := s.users().Where("username", "==", username).Limit(1).Documents(ctx)
	doc, err := it.Next()
	if err == iterator.Done {
		return "", fmt.Errorf("%w: username %q", ErrNotFound, username)
	}
	if err != nil {
		return "", err
	}

	var p UserProfile
	if err := doc.DataTo(&p); err != nil {
		return "", err
	}
	if p.Email == "" {
		return "", fmt.Errorf("%w: username %q has no email", ErrNotFound, username)
	}
	return p.Email, nil
}

// ByEmail finds a profile by email, covering legacy records without a uid.
func (s *Service) ByEmail(ctx context.Context, email string) (*UserProfile, error) {
	it := s.users().Where("email", "==", email).Limit(1).Documents(ctx)
	doc, err := it.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: email %q", ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	var p UserProfile
	if err := doc.DataTo(&p); err != nil {
		return nil, err
	}
	if p.UID == "" {
		p.UID = doc.Ref.ID
	}
	return &p, nil
}

// Update changes profile fields. Usernames must stay unique across users.
func (s *Service) Update(ctx context.Context, uid string, in UpdateProfileInput) (*UserProfile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}
	in.Trim()
	if in.Username == nil || *in.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrBadRequest)
	}

	it := s.users().Where("username", "==", *in.Username).Limit(1).Documents(ctx)
	doc, err := it.Next()
	if err == nil && doc.Ref.ID != uid {
		return nil, fmt.Errorf("%w: %q", ErrUsernameTaken, *in.Username)
	}
	if err != nil && err != iterator.Done {
		return nil, err
	}

	_, err = s.users().Doc(uid).Set(ctx, map[string]any{
		"uid":       uid,
		"username":  *in.Username,
		"updatedAt": time.Now().UTC(),
	}, firestore.MergeAll)
	if err != nil {
		return nil, err
	}

	return s.GetOrCreate(ctx, uid, "")
}
