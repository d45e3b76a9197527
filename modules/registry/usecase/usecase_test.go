package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/repository/memory"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorageByteCost = 100

func newTestUsecase() *Usecase {
	return New(memory.NewRepository(), uint128.From64(testStorageByteCost))
}

// callFrom attaches a deposit large enough for any test write.
func callFrom(caller series.AccountId) Call {
	return Call{Caller: caller, Deposit: uint128.From64(1_000_000_000)}
}

func copiesOf(n uint64) *series.Copies {
	c := series.Copies(n)
	return &c
}

func createParams(title string, copies *series.Copies) CreateSeriesParams {
	return CreateSeriesParams{
		Metadata: series.Metadata{
			Title:  title,
			Media:  "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
			Copies: copies,
		},
		AssetSpec:  series.AssetSpec{AssetCount: 1, Filetypes: []string{"jpg"}},
		CoverAsset: "1",
	}
}

func TestCreateSeries(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.Id)
	assert.Equal(t, series.AccountId("alice.test"), created.OwnerId)

	t.Run("duplicate title", func(t *testing.T) {
		_, err := u.CreateSeries(ctx, callFrom("bob.test"), createParams("Voyagers", copiesOf(5)))
		assert.True(t, errors.Is(err, ErrDuplicateTitle))
	})

	t.Run("ids are sequential", func(t *testing.T) {
		second, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Wanderers", copiesOf(5)))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), second.Id)
	})

	t.Run("insufficient deposit", func(t *testing.T) {
		_, err := u.CreateSeries(ctx, Call{Caller: "alice.test", Deposit: uint128.From64(1)}, createParams("Settlers", copiesOf(5)))
		assert.True(t, errors.Is(err, ErrInsufficientStorageDeposit))
	})

	t.Run("invalid caller", func(t *testing.T) {
		_, err := u.CreateSeries(ctx, callFrom("NOT-VALID"), createParams("Pioneers", copiesOf(5)))
		assert.True(t, errors.Is(err, ErrInvalidCaller))
	})
}

func TestUpdateSeries(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	_, err = u.CreateSeries(ctx, callFrom("alice.test"), createParams("Wanderers", copiesOf(10)))
	require.NoError(t, err)

	t.Run("not owner", func(t *testing.T) {
		_, err := u.UpdateSeries(ctx, callFrom("bob.test"), created.Id, &series.MetadataPatch{Title: lo.ToPtr("Stolen")}, nil)
		assert.True(t, errors.Is(err, ErrNotOwner))
	})

	t.Run("rename to taken title", func(t *testing.T) {
		_, err := u.UpdateSeries(ctx, callFrom("alice.test"), created.Id, &series.MetadataPatch{Title: lo.ToPtr("Wanderers")}, nil)
		assert.True(t, errors.Is(err, ErrDuplicateTitle))
	})

	t.Run("patch applies", func(t *testing.T) {
		updated, err := u.UpdateSeries(ctx, callFrom("alice.test"), created.Id, &series.MetadataPatch{
			Title:       lo.ToPtr("Voyagers II"),
			Description: lo.ToPtr("redux"),
			Media:       lo.ToPtr("other-media"),
		}, &series.Royalty{"artist.test": 1000})
		require.NoError(t, err)
		assert.Equal(t, "Voyagers II", updated.Metadata.Title)
		assert.Equal(t, "redux", *updated.Metadata.Description)
		assert.Equal(t, createParams("", nil).Metadata.Media, updated.Metadata.Media)
		assert.Equal(t, series.Royalty{"artist.test": 1000}, updated.Royalty)

		persisted, err := u.GetSeries(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, "Voyagers II", persisted.Metadata.Title)
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := u.UpdateSeries(ctx, callFrom("alice.test"), 999, &series.MetadataPatch{}, nil)
		assert.True(t, errors.Is(err, ErrSeriesNotFound))
	})
}

func TestCapSeries(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", nil))
	require.NoError(t, err)
	_, err = u.BatchMintEdition(ctx, callFrom("alice.test"), created.Id, []series.AccountId{"bob.test", "bob.test", "bob.test"})
	require.NoError(t, err)

	capped, err := u.CapSeries(ctx, callFrom("alice.test"), created.Id)
	require.NoError(t, err)
	require.NotNil(t, capped.Metadata.Copies)
	assert.Equal(t, uint64(3), capped.Metadata.Copies.Uint64())

	// capping again observes the same copies
	capped, err = u.CapSeries(ctx, callFrom("alice.test"), created.Id)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), capped.Metadata.Copies.Uint64())

	_, err = u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	assert.True(t, errors.Is(err, series.ErrSupplyExhausted))
}

func TestDeleteSeries(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	_, err = u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)

	err = u.DeleteSeries(ctx, callFrom("alice.test"), created.Id)
	assert.True(t, errors.Is(err, ErrSeriesNotEmpty))

	empty, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Wanderers", copiesOf(10)))
	require.NoError(t, err)
	require.NoError(t, u.DeleteSeries(ctx, callFrom("alice.test"), empty.Id))

	_, err = u.GetSeries(ctx, empty.Id)
	assert.True(t, errors.Is(err, ErrSeriesNotFound))
}

func TestMintEdition(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(2)))
	require.NoError(t, err)

	first, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.EditionNumber)
	assert.Equal(t, series.AccountId("bob.test"), first.OwnerId)

	second, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "carol.test")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.EditionNumber)

	_, err = u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	assert.True(t, errors.Is(err, series.ErrSupplyExhausted))

	t.Run("only series owner mints", func(t *testing.T) {
		_, err := u.MintEdition(ctx, callFrom("bob.test"), created.Id, "bob.test")
		assert.True(t, errors.Is(err, ErrNotOwner))
	})
}

func TestBatchMintEdition(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(5)))
	require.NoError(t, err)

	t.Run("too many receivers", func(t *testing.T) {
		receivers := make([]series.AccountId, MaxBatchMintReceivers+1)
		for i := range receivers {
			receivers[i] = "bob.test"
		}
		_, err := u.BatchMintEdition(ctx, callFrom("alice.test"), created.Id, receivers)
		assert.True(t, errors.Is(err, ErrTooManyReceivers))
	})

	minted, err := u.BatchMintEdition(ctx, callFrom("alice.test"), created.Id, []series.AccountId{"bob.test", "carol.test", "bob.test", "dave.test"})
	require.NoError(t, err)
	require.Len(t, minted, 4)
	for i, edition := range minted {
		assert.Equal(t, uint64(i+1), edition.EditionNumber)
	}

	t.Run("batch over remaining supply mints nothing", func(t *testing.T) {
		_, err := u.BatchMintEdition(ctx, callFrom("alice.test"), created.Id, []series.AccountId{"bob.test", "bob.test"})
		require.True(t, errors.Is(err, series.ErrSupplyExhausted))

		supply, err := u.GetSeriesSupply(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), supply.MintedCount)
		assert.Equal(t, uint64(1), *supply.Remaining)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	minted, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)
	tokenId := minted.TokenId()

	t.Run("stranger cannot transfer", func(t *testing.T) {
		_, err := u.Transfer(ctx, callFrom("mallory.test"), tokenId, "mallory.test", nil)
		assert.True(t, errors.Is(err, ErrNotOwnerOrApproved))
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		_, err := u.Transfer(ctx, callFrom("bob.test"), tokenId, "bob.test", nil)
		assert.True(t, errors.Is(err, ErrSelfTransfer))
	})

	transferred, err := u.Transfer(ctx, callFrom("bob.test"), tokenId, "carol.test", nil)
	require.NoError(t, err)
	assert.Equal(t, series.AccountId("carol.test"), transferred.OwnerId)

	owned, err := u.GetEditionsByOwner(ctx, "carol.test", -1, 0)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, tokenId, owned[0].Edition.TokenId())
}

func TestApprovals(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	minted, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)
	tokenId := minted.TokenId()

	t.Run("only owner approves", func(t *testing.T) {
		_, err := u.Approve(ctx, callFrom("mallory.test"), tokenId, "mallory.test", nil)
		assert.True(t, errors.Is(err, ErrNotOwner))
	})

	firstId, err := u.Approve(ctx, callFrom("bob.test"), tokenId, "market.test", lo.ToPtr(`{"price":"100"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), firstId)

	t.Run("msg stored verbatim with the grant", func(t *testing.T) {
		view, err := u.GetEdition(ctx, tokenId)
		require.NoError(t, err)
		grant, ok := view.Edition.ApprovedAccounts["market.test"]
		require.True(t, ok)
		require.NotNil(t, grant.Msg)
		assert.Equal(t, `{"price":"100"}`, *grant.Msg)
	})

	// re-approving issues a fresh id, never reusing an old one, and replaces
	// the stored msg
	secondId, err := u.Approve(ctx, callFrom("bob.test"), tokenId, "market.test", lo.ToPtr(`{"price":"200"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), secondId)

	t.Run("re-approve replaces msg", func(t *testing.T) {
		view, err := u.GetEdition(ctx, tokenId)
		require.NoError(t, err)
		grant := view.Edition.ApprovedAccounts["market.test"]
		require.NotNil(t, grant.Msg)
		assert.Equal(t, `{"price":"200"}`, *grant.Msg)
	})

	approved, err := u.IsApproved(ctx, tokenId, "market.test", nil)
	require.NoError(t, err)
	assert.True(t, approved)

	approved, err = u.IsApproved(ctx, tokenId, "market.test", &firstId)
	require.NoError(t, err)
	assert.False(t, approved)

	t.Run("approved account transfers with matching id", func(t *testing.T) {
		_, err := u.Transfer(ctx, callFrom("market.test"), tokenId, "carol.test", &firstId)
		assert.True(t, errors.Is(err, ErrNotOwnerOrApproved))

		transferred, err := u.Transfer(ctx, callFrom("market.test"), tokenId, "carol.test", &secondId)
		require.NoError(t, err)
		assert.Equal(t, series.AccountId("carol.test"), transferred.OwnerId)
		// transfer clears all approvals
		assert.Empty(t, transferred.ApprovedAccounts)
	})

	t.Run("revoke and revoke all", func(t *testing.T) {
		_, err := u.Approve(ctx, callFrom("carol.test"), tokenId, "market.test", nil)
		require.NoError(t, err)
		_, err = u.Approve(ctx, callFrom("carol.test"), tokenId, "other.test", nil)
		require.NoError(t, err)

		require.NoError(t, u.Revoke(ctx, callFrom("carol.test"), tokenId, "market.test"))
		approved, err := u.IsApproved(ctx, tokenId, "market.test", nil)
		require.NoError(t, err)
		assert.False(t, approved)

		require.NoError(t, u.RevokeAll(ctx, callFrom("carol.test"), tokenId))
		approved, err = u.IsApproved(ctx, tokenId, "other.test", nil)
		require.NoError(t, err)
		assert.False(t, approved)
	})
}

func TestEditionViews(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	require.NoError(t, u.InitRegistry(ctx, entity.RegistryInfo{
		Name:    "Series Registry",
		Symbol:  "SERIES",
		OwnerId: "registry.test",
	}))

	params := createParams("Voyagers", copiesOf(10))
	params.AssetSpec = series.AssetSpec{
		AssetCount: 2,
		Filetypes:  []string{"jpg"},
		Distribution: []series.AssetEntry{
			{AssetId: "cat", Supply: 6},
			{AssetId: "dog", Supply: 4},
		},
		Extras: true,
	}
	created, err := u.CreateSeries(ctx, callFrom("alice.test"), params)
	require.NoError(t, err)
	minted, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)

	view, err := u.GetEdition(ctx, minted.TokenId())
	require.NoError(t, err)
	assert.Equal(t, "Voyagers — 1/10", view.Title)
	assert.Equal(t, params.Metadata.Media+"/cat.jpg", view.MediaURI)
	require.NotNil(t, view.ExtraURI)
	assert.Equal(t, params.Metadata.Media+"/cat.json", *view.ExtraURI)

	t.Run("base uri prefixes media", func(t *testing.T) {
		_, err := u.PatchBaseURI(ctx, callFrom("registry.test"), lo.ToPtr("https://cdn.example.com/"))
		require.NoError(t, err)

		view, err := u.GetEdition(ctx, minted.TokenId())
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/"+params.Metadata.Media+"/cat.jpg", view.MediaURI)
	})

	t.Run("only registry owner patches base uri", func(t *testing.T) {
		_, err := u.PatchBaseURI(ctx, callFrom("alice.test"), nil)
		assert.True(t, errors.Is(err, ErrNotOwner))
	})

	t.Run("no extra uri without extras", func(t *testing.T) {
		plain, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Plain", copiesOf(5)))
		require.NoError(t, err)
		minted, err := u.MintEdition(ctx, callFrom("alice.test"), plain.Id, "bob.test")
		require.NoError(t, err)

		view, err := u.GetEdition(ctx, minted.TokenId())
		require.NoError(t, err)
		assert.Nil(t, view.ExtraURI)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := u.GetEdition(ctx, series.NewTokenId(created.Id, 999))
		assert.True(t, errors.Is(err, ErrTokenNotFound))
	})
}

func TestComputePayout(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	params := createParams("Voyagers", copiesOf(10))
	params.Royalty = series.Royalty{"artist.test": 1000}
	created, err := u.CreateSeries(ctx, callFrom("alice.test"), params)
	require.NoError(t, err)
	minted, err := u.MintEdition(ctx, callFrom("alice.test"), created.Id, "bob.test")
	require.NoError(t, err)

	payout, err := u.ComputePayout(ctx, minted.TokenId(), uint128.From64(1000), 10)
	require.NoError(t, err)
	assert.Equal(t, series.Payout{
		"artist.test": uint128.From64(100),
		"bob.test":    uint128.From64(900),
	}, payout)
}

func TestTotalSupply(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)
	other, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Wanderers", copiesOf(10)))
	require.NoError(t, err)
	_, err = u.BatchMintEdition(ctx, callFrom("alice.test"), created.Id, []series.AccountId{"bob.test", "bob.test"})
	require.NoError(t, err)
	_, err = u.MintEdition(ctx, callFrom("alice.test"), other.Id, "carol.test")
	require.NoError(t, err)

	total, err := u.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)

	count, err := u.CountEditionsByOwner(ctx, "bob.test")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestGetSeriesByTitle(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase()

	created, err := u.CreateSeries(ctx, callFrom("alice.test"), createParams("Voyagers", copiesOf(10)))
	require.NoError(t, err)

	found, err := u.GetSeriesByTitle(ctx, "Voyagers")
	require.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)

	_, err = u.GetSeriesByTitle(ctx, "Wanderers")
	assert.True(t, errors.Is(err, ErrSeriesNotFound))
}
