package series

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// AssetEntry is one row of an explicit asset distribution table supplied at
// series creation time for semi-generative series.
type AssetEntry struct {
	AssetId string `json:"asset_id"`
	Supply  uint64 `json:"supply"`
}

// AssetSpec describes how assets are assigned to editions of a series.
//
// Three canonical shapes:
//   - non-generative: AssetCount == 1, copies > 1, no explicit table
//   - semi-generative: 1 < AssetCount < copies, explicit table required
//   - fully-generative: AssetCount == copies, no explicit table (one unique
//     asset per edition, asset ids are synthesized as "1".."N")
type AssetSpec struct {
	AssetCount   uint64       `json:"asset_count"`
	Filetypes    []string     `json:"filetypes"`
	Distribution []AssetEntry `json:"distribution,omitempty"`
	// Extras declares a secondary ".json" trait file per asset.
	Extras bool `json:"extras"`
}

// AssetSlot is one mintable asset slot of a series. Exhausted slots stay in
// the table with zero remaining supply so that the original shape of the
// distribution stays auditable.
type AssetSlot struct {
	AssetId         string `json:"asset_id"`
	SupplyRemaining uint64 `json:"supply_remaining"`
	Filetype        string `json:"filetype"`
}

// Distribution is the per-series ledger of mintable asset slots, in creation
// order. An unbounded distribution is the single-slot table of an uncapped
// non-generative series; its slot is never decremented.
type Distribution struct {
	Slots     []AssetSlot `json:"slots"`
	Unbounded bool        `json:"unbounded"`
	// Extras mirrors AssetSpec.Extras: minted editions carry an "<asset>.json"
	// extra reference.
	Extras bool `json:"extras"`
}

// NewDistribution validates an asset spec against the series copies cap and
// builds the slot table. copies == nil (uncapped series) only admits the
// non-generative single-asset shape.
func NewDistribution(spec AssetSpec, copies *Copies) (Distribution, error) {
	if spec.AssetCount == 0 {
		return Distribution{}, errors.Wrap(ErrMissingDistribution, "asset count must be at least 1")
	}
	if len(spec.Filetypes) != 1 && uint64(len(spec.Filetypes)) != spec.AssetCount {
		return Distribution{}, errors.Wrapf(ErrAssetDistributionMismatch,
			"filetypes must have length 1 or asset count %d, got %d", spec.AssetCount, len(spec.Filetypes))
	}
	filetypeAt := func(i int) string {
		if len(spec.Filetypes) == 1 {
			return spec.Filetypes[0]
		}
		return spec.Filetypes[i]
	}

	if copies == nil {
		// Uncapped series mint an unlimited run of a single shared asset. A
		// weighted table has nothing to sum against until the series is capped.
		if spec.AssetCount != 1 {
			return Distribution{}, errors.Wrap(ErrAssetDistributionMismatch,
				"uncapped series must use a single asset")
		}
		if len(spec.Distribution) > 0 {
			return Distribution{}, errors.Wrap(ErrUnexpectedDistribution,
				"uncapped series cannot carry an explicit distribution")
		}
		return Distribution{
			Slots:     []AssetSlot{{AssetId: "1", Filetype: filetypeAt(0)}},
			Unbounded: true,
			Extras:    spec.Extras,
		}, nil
	}

	c := copies.Uint64()
	switch {
	case spec.AssetCount == c:
		// Fully-generative: one unique asset per edition.
		if len(spec.Distribution) > 0 {
			return Distribution{}, errors.Wrap(ErrUnexpectedDistribution,
				"fully-generative series cannot carry an explicit distribution")
		}
		slots := make([]AssetSlot, 0, c)
		for i := uint64(0); i < c; i++ {
			slots = append(slots, AssetSlot{
				AssetId:         strconv.FormatUint(i+1, 10),
				SupplyRemaining: 1,
				Filetype:        filetypeAt(int(i)),
			})
		}
		return Distribution{Slots: slots, Extras: spec.Extras}, nil

	case spec.AssetCount == 1:
		// Non-generative: numbered editions of a single shared asset.
		if len(spec.Distribution) > 0 {
			return Distribution{}, errors.Wrap(ErrUnexpectedDistribution,
				"non-generative series cannot carry an explicit distribution")
		}
		return Distribution{
			Slots:  []AssetSlot{{AssetId: "1", SupplyRemaining: c, Filetype: filetypeAt(0)}},
			Extras: spec.Extras,
		}, nil

	default:
		// Semi-generative: explicit weighted table required.
		if len(spec.Distribution) == 0 {
			return Distribution{}, errors.Wrap(ErrMissingDistribution,
				"semi-generative series requires an explicit distribution")
		}
		if uint64(len(spec.Distribution)) != spec.AssetCount {
			return Distribution{}, errors.Wrapf(ErrAssetDistributionMismatch,
				"distribution must have exactly %d entries, got %d", spec.AssetCount, len(spec.Distribution))
		}
		var total uint64
		slots := make([]AssetSlot, 0, len(spec.Distribution))
		for i, entry := range spec.Distribution {
			if entry.AssetId == "" {
				return Distribution{}, errors.Wrapf(ErrAssetDistributionMismatch,
					"asset id must be provided for entry %d", i)
			}
			total += entry.Supply
			slots = append(slots, AssetSlot{
				AssetId:         entry.AssetId,
				SupplyRemaining: entry.Supply,
				Filetype:        filetypeAt(i),
			})
		}
		if total != c {
			return Distribution{}, errors.Wrapf(ErrAssetDistributionMismatch,
				"total supply must equal copies, got %d total supply and %d copies", total, c)
		}
		return Distribution{Slots: slots, Extras: spec.Extras}, nil
	}
}

// Consume assigns the next asset: the first slot in table order with remaining
// supply, decremented by one. Exhausted slots are skipped but never removed.
// Returns ErrSeriesExhausted when every slot has reached zero.
func (d *Distribution) Consume() (AssetSlot, error) {
	for i := range d.Slots {
		if d.Unbounded {
			return d.Slots[i], nil
		}
		if d.Slots[i].SupplyRemaining > 0 {
			d.Slots[i].SupplyRemaining--
			return d.Slots[i], nil
		}
	}
	return AssetSlot{}, errors.WithStack(ErrSeriesExhausted)
}

// Remaining returns the total supply left across all slots. Unbounded
// distributions report ok == false.
func (d Distribution) Remaining() (total uint64, ok bool) {
	if d.Unbounded {
		return 0, false
	}
	return lo.SumBy(d.Slots, func(s AssetSlot) uint64 { return s.SupplyRemaining }), true
}

// Exhaust zeroes all remaining supply. Used by capping: once copies is fixed
// to the minted count, nothing further may be assigned.
func (d *Distribution) Exhaust() {
	d.Unbounded = false
	for i := range d.Slots {
		d.Slots[i].SupplyRemaining = 0
	}
}
