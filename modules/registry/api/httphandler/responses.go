package httphandler

import (
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/gaze-network/series-registry/modules/registry/usecase"
	"github.com/samber/lo"
)

type assetSlotResult struct {
	AssetId         string `json:"assetId"`
	SupplyRemaining uint64 `json:"supplyRemaining"`
	Filetype        string `json:"filetype"`
}

type seriesResult struct {
	Id           uint64            `json:"id"`
	OwnerId      string            `json:"ownerId"`
	Title        string            `json:"title"`
	Media        string            `json:"media"`
	Copies       *uint64           `json:"copies"`
	Description  *string           `json:"description"`
	Royalty      map[string]uint32 `json:"royalty"`
	CoverAsset   string            `json:"coverAsset"`
	Distribution []assetSlotResult `json:"distribution"`
	Extras       bool              `json:"extras"`
	MintedCount  uint64            `json:"mintedCount"`
	Capped       bool              `json:"capped"`
	CreatedAt    int64             `json:"createdAt"` // unix timestamp
}

func newSeriesResult(src *series.Series) seriesResult {
	var copies *uint64
	if src.Metadata.Copies != nil {
		copies = lo.ToPtr(src.Metadata.Copies.Uint64())
	}
	royalty := make(map[string]uint32, len(src.Royalty))
	for account, bps := range src.Royalty {
		royalty[account.String()] = bps
	}
	return seriesResult{
		Id:          src.Id,
		OwnerId:     src.OwnerId.String(),
		Title:       src.Metadata.Title,
		Media:       src.Metadata.Media,
		Copies:      copies,
		Description: src.Metadata.Description,
		Royalty:     royalty,
		CoverAsset:  src.CoverAsset,
		Distribution: lo.Map(src.Distribution.Slots, func(slot series.AssetSlot, _ int) assetSlotResult {
			return assetSlotResult{
				AssetId:         slot.AssetId,
				SupplyRemaining: slot.SupplyRemaining,
				Filetype:        slot.Filetype,
			}
		}),
		Extras:      src.Distribution.Extras,
		MintedCount: src.MintedCount,
		Capped:      src.Capped,
		CreatedAt:   src.CreatedAt.Unix(),
	}
}

type approvalResult struct {
	ApprovalId uint64  `json:"approvalId"`
	Msg        *string `json:"msg,omitempty"`
}

type editionResult struct {
	TokenId          string                    `json:"tokenId"`
	SeriesId         uint64                    `json:"seriesId"`
	EditionNumber    uint64                    `json:"editionNumber"`
	OwnerId          string                    `json:"ownerId"`
	AssetId          string                    `json:"assetId"`
	Filetype         string                    `json:"filetype"`
	MintedAt         int64                     `json:"mintedAt"` // unix timestamp
	ApprovedAccounts map[string]approvalResult `json:"approvedAccounts"`
}

func newEditionResult(src *entity.Edition) editionResult {
	approved := make(map[string]approvalResult, len(src.ApprovedAccounts))
	for account, grant := range src.ApprovedAccounts {
		approved[account.String()] = approvalResult{ApprovalId: grant.Id, Msg: grant.Msg}
	}
	return editionResult{
		TokenId:          src.TokenId().String(),
		SeriesId:         src.SeriesId,
		EditionNumber:    src.EditionNumber,
		OwnerId:          src.OwnerId.String(),
		AssetId:          src.AssetId,
		Filetype:         src.Filetype,
		MintedAt:         src.MintedAt.Unix(),
		ApprovedAccounts: approved,
	}
}

type editionViewResult struct {
	editionResult
	Title    string  `json:"title"`
	MediaURI string  `json:"mediaUri"`
	ExtraURI *string `json:"extraUri"`
}

func newEditionViewResult(src *usecase.EditionView) editionViewResult {
	return editionViewResult{
		editionResult: newEditionResult(src.Edition),
		Title:         src.Title,
		MediaURI:      src.MediaURI,
		ExtraURI:      src.ExtraURI,
	}
}
