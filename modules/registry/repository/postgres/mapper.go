package postgres

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/repository/postgres/gen"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

// distributionModel is the JSONB shape of a series asset table. Slots keep
// their table order; exhausted slots stay with zero supply.
type distributionModel struct {
	Slots     []assetSlotModel `json:"slots"`
	Unbounded bool             `json:"unbounded"`
	Extras    bool             `json:"extras"`
}

type assetSlotModel struct {
	AssetId         string `json:"asset_id"`
	SupplyRemaining uint64 `json:"supply_remaining"`
	Filetype        string `json:"filetype"`
}

func numericFromUint64(src uint64) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(strconv.FormatUint(src, 10))); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func numericFromCopies(src *series.Copies) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	return numericFromUint64(src.Uint64())
}

func uint64FromNumeric(src pgtype.Numeric) (uint64, error) {
	if !src.Valid {
		return 0, errors.New("numeric is null")
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	result, err := strconv.ParseUint(string(bytes), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(errs.OverflowUint64, "numeric value %s", bytes)
		}
		return 0, errors.WithStack(err)
	}
	return result, nil
}

func copiesFromNumeric(src pgtype.Numeric) (*series.Copies, error) {
	if !src.Valid {
		return nil, nil
	}
	value, err := uint64FromNumeric(src)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return lo.ToPtr(series.Copies(value)), nil
}

func mapSeriesModelToType(src gen.RegistrySeries) (*series.Series, error) {
	copies, err := copiesFromNumeric(src.Copies)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse copies")
	}
	mintedCount, err := uint64FromNumeric(src.MintedCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse minted count")
	}
	var royalty series.Royalty
	if len(src.Royalty) > 0 {
		if err := json.Unmarshal(src.Royalty, &royalty); err != nil {
			return nil, errors.Wrap(err, "failed to parse royalty")
		}
	}
	var distModel distributionModel
	if err := json.Unmarshal(src.Distribution, &distModel); err != nil {
		return nil, errors.Wrap(err, "failed to parse distribution")
	}
	var description *string
	if src.Description.Valid {
		description = lo.ToPtr(src.Description.String)
	}
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	return &series.Series{
		Id:      uint64(src.ID),
		OwnerId: series.AccountId(src.OwnerID),
		Metadata: series.Metadata{
			Title:       src.Title,
			Media:       src.Media,
			Copies:      copies,
			Description: description,
		},
		Royalty:    royalty,
		CoverAsset: src.CoverAsset,
		Distribution: series.Distribution{
			Slots: lo.Map(distModel.Slots, func(slot assetSlotModel, _ int) series.AssetSlot {
				return series.AssetSlot{
					AssetId:         slot.AssetId,
					SupplyRemaining: slot.SupplyRemaining,
					Filetype:        slot.Filetype,
				}
			}),
			Unbounded: distModel.Unbounded,
			Extras:    distModel.Extras,
		},
		MintedCount: mintedCount,
		Capped:      src.Capped,
		CreatedAt:   createdAt,
	}, nil
}

func marshalDistribution(src series.Distribution) ([]byte, error) {
	model := distributionModel{
		Slots: lo.Map(src.Slots, func(slot series.AssetSlot, _ int) assetSlotModel {
			return assetSlotModel{
				AssetId:         slot.AssetId,
				SupplyRemaining: slot.SupplyRemaining,
				Filetype:        slot.Filetype,
			}
		}),
		Unbounded: src.Unbounded,
		Extras:    src.Extras,
	}
	bytes, err := json.Marshal(model)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bytes, nil
}

func mapSeriesTypeToCreateParams(src *series.Series) (gen.CreateSeriesParams, error) {
	copies, err := numericFromCopies(src.Metadata.Copies)
	if err != nil {
		return gen.CreateSeriesParams{}, errors.WithStack(err)
	}
	mintedCount, err := numericFromUint64(src.MintedCount)
	if err != nil {
		return gen.CreateSeriesParams{}, errors.WithStack(err)
	}
	royaltyBytes, err := json.Marshal(lo.Ternary(src.Royalty != nil, src.Royalty, series.Royalty{}))
	if err != nil {
		return gen.CreateSeriesParams{}, errors.WithStack(err)
	}
	distBytes, err := marshalDistribution(src.Distribution)
	if err != nil {
		return gen.CreateSeriesParams{}, errors.WithStack(err)
	}
	var description pgtype.Text
	if src.Metadata.Description != nil {
		description = pgtype.Text{String: *src.Metadata.Description, Valid: true}
	}
	return gen.CreateSeriesParams{
		OwnerID:      src.OwnerId.String(),
		Title:        src.Metadata.Title,
		Media:        src.Metadata.Media,
		Copies:       copies,
		Description:  description,
		Royalty:      royaltyBytes,
		CoverAsset:   src.CoverAsset,
		Distribution: distBytes,
		MintedCount:  mintedCount,
		Capped:       src.Capped,
		CreatedAt:    pgtype.Timestamp{Time: src.CreatedAt.UTC(), Valid: true},
	}, nil
}

func mapSeriesTypeToUpdateParams(src *series.Series) (gen.UpdateSeriesParams, error) {
	createParams, err := mapSeriesTypeToCreateParams(src)
	if err != nil {
		return gen.UpdateSeriesParams{}, errors.WithStack(err)
	}
	return gen.UpdateSeriesParams{
		ID:           int64(src.Id),
		Title:        createParams.Title,
		Copies:       createParams.Copies,
		Description:  createParams.Description,
		Royalty:      createParams.Royalty,
		Distribution: createParams.Distribution,
		MintedCount:  createParams.MintedCount,
		Capped:       createParams.Capped,
	}, nil
}

// approvalModel is the JSONB shape of a single approval grant.
type approvalModel struct {
	Id  uint64  `json:"id"`
	Msg *string `json:"msg,omitempty"`
}

func mapEditionModelToType(src gen.RegistryEdition) (*entity.Edition, error) {
	var approvedModels map[series.AccountId]approvalModel
	if len(src.ApprovedAccounts) > 0 {
		if err := json.Unmarshal(src.ApprovedAccounts, &approvedModels); err != nil {
			return nil, errors.Wrap(err, "failed to parse approved accounts")
		}
	}
	var approvedAccounts map[series.AccountId]entity.Approval
	if len(approvedModels) > 0 {
		approvedAccounts = make(map[series.AccountId]entity.Approval, len(approvedModels))
		for account, grant := range approvedModels {
			approvedAccounts[account] = entity.Approval{Id: grant.Id, Msg: grant.Msg}
		}
	}
	var mintedAt time.Time
	if src.MintedAt.Valid {
		mintedAt = src.MintedAt.Time.UTC()
	}
	return &entity.Edition{
		SeriesId:         uint64(src.SeriesID),
		EditionNumber:    uint64(src.EditionNumber),
		OwnerId:          series.AccountId(src.OwnerID),
		AssetId:          src.AssetID,
		Filetype:         src.Filetype,
		HasExtra:         src.HasExtra,
		MintedAt:         mintedAt,
		ApprovedAccounts: approvedAccounts,
		NextApprovalId:   uint64(src.NextApprovalID),
	}, nil
}

func mapEditionTypeToCreateParams(src *entity.Edition) (gen.CreateEditionParams, error) {
	approvedBytes, err := marshalApprovedAccounts(src.ApprovedAccounts)
	if err != nil {
		return gen.CreateEditionParams{}, errors.WithStack(err)
	}
	return gen.CreateEditionParams{
		SeriesID:         int64(src.SeriesId),
		EditionNumber:    int64(src.EditionNumber),
		OwnerID:          src.OwnerId.String(),
		AssetID:          src.AssetId,
		Filetype:         src.Filetype,
		HasExtra:         src.HasExtra,
		MintedAt:         pgtype.Timestamp{Time: src.MintedAt.UTC(), Valid: true},
		ApprovedAccounts: approvedBytes,
		NextApprovalID:   int64(src.NextApprovalId),
	}, nil
}

func marshalApprovedAccounts(src map[series.AccountId]entity.Approval) ([]byte, error) {
	models := make(map[series.AccountId]approvalModel, len(src))
	for account, grant := range src {
		models[account] = approvalModel{Id: grant.Id, Msg: grant.Msg}
	}
	bytes, err := json.Marshal(models)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bytes, nil
}

func mapRegistryInfoModelToType(src gen.RegistryInfo) *entity.RegistryInfo {
	var baseURI *string
	if src.BaseUri.Valid {
		baseURI = lo.ToPtr(src.BaseUri.String)
	}
	return &entity.RegistryInfo{
		Name:    src.Name,
		Symbol:  src.Symbol,
		BaseURI: baseURI,
		OwnerId: series.AccountId(src.OwnerID),
	}
}
