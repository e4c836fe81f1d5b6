package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredConfirmations(t *testing.T) {
	retention := 90 * 24 * time.Hour

	var cutoff time.Time
	confRepo := &mockConfirmationRepository{
		DeleteExpiredBeforeFunc: func(ctx context.Context, c time.Time) (int64, error) {
			cutoff = c
			return 12, nil
		},
	}

	uc := NewPurgeExpiredConfirmationsUseCase(confRepo, retention, &mockLogger{})

	purged, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), purged)
	assert.WithinDuration(t, time.Now().UTC().Add(-retention), cutoff, time.Minute)
}

func TestPurgeExpiredConfirmations_Failure(t *testing.T) {
	confRepo := &mockConfirmationRepository{
		DeleteExpiredBeforeFunc: func(ctx context.Context, c time.Time) (int64, error) {
			return 0, errors.New("lock wait timeout")
		},
	}

	uc := NewPurgeExpiredConfirmationsUseCase(confRepo, 24*time.Hour, &mockLogger{})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
