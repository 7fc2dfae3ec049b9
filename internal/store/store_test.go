package store

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestEnsureExistsMissingDocument(t *testing.T) {
	err := EnsureExists(nil, status.Error(codes.NotFound, "no such document"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureExistsEmptySnapshot(t *testing.T) {
	assert.ErrorIs(t, EnsureExists(nil, nil), ErrNotFound)
	assert.ErrorIs(t, EnsureExists(&firestore.DocumentSnapshot{}, nil), ErrNotFound)
}

func TestEnsureExistsPropagatesReadFailures(t *testing.T) {
	err := EnsureExists(nil, status.Error(codes.Unavailable, "backend down"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
