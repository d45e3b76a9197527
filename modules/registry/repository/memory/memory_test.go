package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEditionsOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	editions := []*entity.Edition{
		{SeriesId: math.MaxUint64, EditionNumber: 1, OwnerId: "alice.test"},
		{SeriesId: 1, EditionNumber: 2, OwnerId: "alice.test"},
		{SeriesId: 1, EditionNumber: 1, OwnerId: "alice.test"},
		{SeriesId: math.MaxUint64, EditionNumber: math.MaxUint64, OwnerId: "alice.test"},
		{SeriesId: 7, EditionNumber: 1, OwnerId: "bob.test"},
	}
	for _, edition := range editions {
		edition.MintedAt = time.Now()
		require.NoError(t, repo.CreateEdition(ctx, edition))
	}

	results, err := repo.GetEditions(ctx, -1, 0)
	require.NoError(t, err)

	tokenIds := make([]series.TokenId, 0, len(results))
	for _, edition := range results {
		tokenIds = append(tokenIds, edition.TokenId())
	}
	assert.Equal(t, []series.TokenId{
		series.NewTokenId(1, 1),
		series.NewTokenId(1, 2),
		series.NewTokenId(7, 1),
		series.NewTokenId(math.MaxUint64, 1),
		series.NewTokenId(math.MaxUint64, math.MaxUint64),
	}, tokenIds)

	t.Run("owner filter keeps ordering", func(t *testing.T) {
		results, err := repo.GetEditionsByOwner(ctx, "alice.test", -1, 0)
		require.NoError(t, err)
		require.Len(t, results, 4)
		assert.Equal(t, series.NewTokenId(1, 1), results[0].TokenId())
		assert.Equal(t, series.NewTokenId(math.MaxUint64, math.MaxUint64), results[3].TokenId())
	})
}
