package series

import (
	"time"

	"github.com/cockroachdb/errors"
)

// RoyaltyDenominator is the full royalty share in basis points.
const RoyaltyDenominator = 10_000

// Royalty maps payout accounts to their perpetual share in basis points.
type Royalty map[AccountId]uint32

// Validate checks that every key is a well-formed account id and that the
// shares sum to at most 10000 basis points.
func (r Royalty) Validate() error {
	var total uint64
	for account, bps := range r {
		if !account.Valid() {
			return errors.Wrapf(ErrInvalidMetadata, "invalid royalty account id %q", account)
		}
		if bps > RoyaltyDenominator {
			return errors.Wrapf(ErrRoyaltyOverflow, "share of %q is %d basis points", account, bps)
		}
		total += uint64(bps)
	}
	if total > RoyaltyDenominator {
		return errors.Wrapf(ErrRoyaltyOverflow, "shares sum to %d basis points", total)
	}
	return nil
}

// Series is a named, owned template from which editions are minted.
type Series struct {
	Id       uint64
	OwnerId  AccountId
	Metadata Metadata
	Royalty  Royalty
	// CoverAsset is the asset id whose rendering represents the series as a whole.
	CoverAsset   string
	Distribution Distribution
	// MintedCount is the number of editions minted so far. Monotonically
	// non-decreasing.
	MintedCount uint64
	// Capped is set once CapCopies has been applied. Irreversible.
	Capped    bool
	CreatedAt time.Time
}

// NewSeries validates creation-time invariants and assembles a series. The id
// is assigned by the registry store on insert.
func NewSeries(ownerId AccountId, metadata Metadata, spec AssetSpec, royalty Royalty, coverAsset string) (*Series, error) {
	if !ownerId.Valid() {
		return nil, errors.Wrapf(ErrInvalidMetadata, "invalid owner account id %q", ownerId)
	}
	if err := metadata.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := royalty.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	distribution, err := NewDistribution(spec, metadata.Copies)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Series{
		OwnerId:      ownerId,
		Metadata:     metadata,
		Royalty:      royalty,
		CoverAsset:   coverAsset,
		Distribution: distribution,
	}, nil
}

// Title returns the unique series title.
func (s *Series) Title() string {
	return s.Metadata.Title
}

// ApplyPatch applies a partial metadata update and/or a full royalty
// replacement. Media and copies are never patched, even when supplied: those
// changes go through CapCopies or a fresh series.
func (s *Series) ApplyPatch(metadata *MetadataPatch, royalty *Royalty) error {
	if metadata != nil {
		if metadata.Title != nil {
			if *metadata.Title == "" {
				return errors.Wrap(ErrInvalidMetadata, "title must not be empty")
			}
			s.Metadata.Title = *metadata.Title
		}
		// description can be patched to nothing
		s.Metadata.Description = metadata.Description
	}
	if royalty != nil {
		if err := royalty.Validate(); err != nil {
			return errors.WithStack(err)
		}
		s.Royalty = *royalty
	}
	return nil
}

// CapCopies irreversibly fixes copies to the minted count and exhausts the
// remaining asset supply. Idempotent: minted count cannot decrease, so a
// second call observes the same value.
func (s *Series) CapCopies() {
	c := Copies(s.MintedCount)
	s.Metadata.Copies = &c
	s.Capped = true
	s.Distribution.Exhaust()
}

// EditionCap is the denominator of edition display titles: the copies cap when
// set, the minted count of the open run otherwise.
func (s *Series) EditionCap() uint64 {
	if s.Metadata.Copies != nil {
		return s.Metadata.Copies.Uint64()
	}
	return s.MintedCount
}

// AssertMintable returns ErrSupplyExhausted once the minted count has reached
// the copies cap.
func (s *Series) AssertMintable() error {
	if s.Metadata.Copies != nil && s.MintedCount >= s.Metadata.Copies.Uint64() {
		return errors.Wrapf(ErrSupplyExhausted, "series %q minted all %d copies", s.Title(), s.Metadata.Copies.Uint64())
	}
	return nil
}

// NextEdition allocates the next edition for the series: checks the copies
// cap, consumes one asset slot and increments the minted count. Edition
// numbers are sequential starting at 1.
func (s *Series) NextEdition() (editionNumber uint64, slot AssetSlot, err error) {
	if err := s.AssertMintable(); err != nil {
		return 0, AssetSlot{}, errors.WithStack(err)
	}
	slot, err = s.Distribution.Consume()
	if err != nil {
		return 0, AssetSlot{}, errors.WithStack(err)
	}
	s.MintedCount++
	return s.MintedCount, slot, nil
}
