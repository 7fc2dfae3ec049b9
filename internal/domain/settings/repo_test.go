package settings

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeDoc struct{ err error }

func (f fakeDoc) Get(context.Context) (*firestore.DocumentSnapshot, error) {
	return nil, f.err
}

func TestGetKeepsDefaultWhenDocumentAbsent(t *testing.T) {
	absent := fakeDoc{err: status.Error(codes.NotFound, "no such document")}

	hours := DefaultBusinessHours()
	require.NoError(t, getInto(context.Background(), absent, &hours))
	assert.Equal(t, DefaultBusinessHours(), hours)
	require.Len(t, hours.Periods, 1)
	assert.False(t, hours.Periods[0].IsClosed)

	numbers := DefaultWhatsAppNumbers()
	require.NoError(t, getInto(context.Background(), absent, &numbers))
	assert.Equal(t, DefaultWhatsAppNumbers(), numbers)
}

func TestGetPropagatesReadFailures(t *testing.T) {
	broken := fakeDoc{err: status.Error(codes.Unavailable, "backend down")}

	hours := DefaultBusinessHours()
	err := getInto(context.Background(), broken, &hours)
	assert.Error(t, err)
}
