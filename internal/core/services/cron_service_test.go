package services

import (
	"context"
	"testing"
	"time"

	"tendertrack/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
)

func TestCronCleanupRemovesOnlyExpiredTokens(t *testing.T) {
	tokenRepo := newFakeRefreshTokenRepo()
	seedToken := func(hash string, expiresAt time.Time) {
		require.NoError(t, tokenRepo.Create(context.Background(), &models.RefreshToken{
			UserID:    1,
			TokenHash: hash,
			ExpiresAt: expiresAt,
		}))
	}
	seedToken("expired", time.Now().Add(-time.Hour))
	seedToken("live", time.Now().Add(24*time.Hour))

	svc := NewCronService(tokenRepo)
	svc.CleanupExpiredTokens()

	require.NotContains(t, tokenRepo.tokens, "expired")
	require.Contains(t, tokenRepo.tokens, "live")
}

func TestCronStartStop(t *testing.T) {
	svc := NewCronService(newFakeRefreshTokenRepo())
	require.NoError(t, svc.Start())
	svc.Stop()
}
