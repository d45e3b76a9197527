package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/series-registry/common/errs"
	"github.com/gaze-network/series-registry/modules/registry/datagateway"
	"github.com/gaze-network/series-registry/modules/registry/internal/entity"
	"github.com/gaze-network/series-registry/modules/registry/series"
	"github.com/samber/lo"
)

// Repository is an in-process RegistryDataGateway. Transactions copy the whole
// state and swap it back on Commit, so a rolled back transaction leaves no
// trace. The registry is call-serialized, so a transaction holds the
// repository lock until Commit or Rollback.
type Repository struct {
	mu    sync.Mutex
	state *state

	// set on repositories returned by BeginRegistryTx
	parent *Repository
	done   bool
}

type state struct {
	nextSeriesId uint64
	seriesById   map[uint64]*series.Series
	editions     map[series.TokenId]*entity.Edition
	info         *entity.RegistryInfo
}

var _ datagateway.RegistryDataGateway = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{
		state: &state{
			nextSeriesId: 1,
			seriesById:   make(map[uint64]*series.Series),
			editions:     make(map[series.TokenId]*entity.Edition),
		},
	}
}

func (r *Repository) BeginRegistryTx(ctx context.Context) (datagateway.RegistryDataGatewayWithTx, error) {
	if r.parent != nil {
		return nil, errors.New("nested transactions are not supported")
	}
	r.mu.Lock()
	return &Repository{
		state:  r.state.clone(),
		parent: r,
	}, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.parent == nil || r.done {
		return nil
	}
	r.parent.state = r.state
	r.done = true
	r.parent.mu.Unlock()
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.parent == nil || r.done {
		return nil
	}
	r.done = true
	r.parent.mu.Unlock()
	return nil
}

func (s *state) clone() *state {
	cloned := &state{
		nextSeriesId: s.nextSeriesId,
		seriesById:   make(map[uint64]*series.Series, len(s.seriesById)),
		editions:     make(map[series.TokenId]*entity.Edition, len(s.editions)),
	}
	for id, sr := range s.seriesById {
		cloned.seriesById[id] = cloneSeries(sr)
	}
	for tokenId, edition := range s.editions {
		cloned.editions[tokenId] = cloneEdition(edition)
	}
	if s.info != nil {
		info := *s.info
		if s.info.BaseURI != nil {
			info.BaseURI = lo.ToPtr(*s.info.BaseURI)
		}
		cloned.info = &info
	}
	return cloned
}

func cloneSeries(src *series.Series) *series.Series {
	cloned := *src
	if src.Metadata.Copies != nil {
		cloned.Metadata.Copies = lo.ToPtr(*src.Metadata.Copies)
	}
	if src.Metadata.Description != nil {
		cloned.Metadata.Description = lo.ToPtr(*src.Metadata.Description)
	}
	cloned.Royalty = maps.Clone(src.Royalty)
	cloned.Distribution.Slots = slices.Clone(src.Distribution.Slots)
	return &cloned
}

func cloneEdition(src *entity.Edition) *entity.Edition {
	cloned := *src
	cloned.ApprovedAccounts = maps.Clone(src.ApprovedAccounts)
	return &cloned
}

// lock guards direct (non-transactional) access to the root repository.
func (r *Repository) lock() func() {
	if r.parent != nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Repository) GetSeries(ctx context.Context, seriesId uint64) (*series.Series, error) {
	defer r.lock()()
	sr, ok := r.state.seriesById[seriesId]
	if !ok {
		return nil, errors.WithStack(errs.NotFound)
	}
	return cloneSeries(sr), nil
}

func (r *Repository) GetSeriesByTitle(ctx context.Context, title string) (*series.Series, error) {
	defer r.lock()()
	for _, sr := range r.state.seriesById {
		if sr.Metadata.Title == title {
			return cloneSeries(sr), nil
		}
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (r *Repository) GetSeriesList(ctx context.Context, limit int32, offset int32) ([]*series.Series, error) {
	defer r.lock()()
	ids := lo.Keys(r.state.seriesById)
	slices.Sort(ids)
	results := make([]*series.Series, 0, len(ids))
	for _, id := range paginate(ids, limit, offset) {
		results = append(results, cloneSeries(r.state.seriesById[id]))
	}
	return results, nil
}

func (r *Repository) CountSeries(ctx context.Context) (uint64, error) {
	defer r.lock()()
	return uint64(len(r.state.seriesById)), nil
}

func (r *Repository) CountEditions(ctx context.Context) (uint64, error) {
	defer r.lock()()
	return uint64(len(r.state.editions)), nil
}

func (r *Repository) GetEdition(ctx context.Context, tokenId series.TokenId) (*entity.Edition, error) {
	defer r.lock()()
	edition, ok := r.state.editions[tokenId]
	if !ok {
		return nil, errors.WithStack(errs.NotFound)
	}
	return cloneEdition(edition), nil
}

func (r *Repository) GetEditions(ctx context.Context, limit int32, offset int32) ([]*entity.Edition, error) {
	defer r.lock()()
	return r.collectEditions(func(*entity.Edition) bool { return true }, limit, offset), nil
}

func (r *Repository) GetEditionsBySeries(ctx context.Context, seriesId uint64, limit int32, offset int32) ([]*entity.Edition, error) {
	defer r.lock()()
	return r.collectEditions(func(e *entity.Edition) bool { return e.SeriesId == seriesId }, limit, offset), nil
}

func (r *Repository) GetEditionsByOwner(ctx context.Context, ownerId series.AccountId, limit int32, offset int32) ([]*entity.Edition, error) {
	defer r.lock()()
	return r.collectEditions(func(e *entity.Edition) bool { return e.OwnerId == ownerId }, limit, offset), nil
}

func (r *Repository) CountEditionsByOwner(ctx context.Context, ownerId series.AccountId) (uint64, error) {
	defer r.lock()()
	count := uint64(0)
	for _, edition := range r.state.editions {
		if edition.OwnerId == ownerId {
			count++
		}
	}
	return count, nil
}

func (r *Repository) collectEditions(match func(*entity.Edition) bool, limit int32, offset int32) []*entity.Edition {
	tokenIds := lo.Keys(r.state.editions)
	slices.SortFunc(tokenIds, func(a, b series.TokenId) int {
		if c := cmp.Compare(a.SeriesId, b.SeriesId); c != 0 {
			return c
		}
		return cmp.Compare(a.EditionNumber, b.EditionNumber)
	})
	matched := make([]series.TokenId, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		if match(r.state.editions[tokenId]) {
			matched = append(matched, tokenId)
		}
	}
	results := make([]*entity.Edition, 0, len(matched))
	for _, tokenId := range paginate(matched, limit, offset) {
		results = append(results, cloneEdition(r.state.editions[tokenId]))
	}
	return results
}

func paginate[T any](items []T, limit int32, offset int32) []T {
	if offset < 0 || int(offset) >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit >= 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items
}

func (r *Repository) GetRegistryInfo(ctx context.Context) (*entity.RegistryInfo, error) {
	defer r.lock()()
	if r.state.info == nil {
		return nil, errors.WithStack(errs.NotFound)
	}
	info := *r.state.info
	return &info, nil
}

func (r *Repository) CreateSeries(ctx context.Context, s *series.Series) (uint64, error) {
	defer r.lock()()
	id := r.state.nextSeriesId
	r.state.nextSeriesId++
	cloned := cloneSeries(s)
	cloned.Id = id
	r.state.seriesById[id] = cloned
	return id, nil
}

func (r *Repository) UpdateSeries(ctx context.Context, s *series.Series) error {
	defer r.lock()()
	if _, ok := r.state.seriesById[s.Id]; !ok {
		return errors.WithStack(errs.NotFound)
	}
	r.state.seriesById[s.Id] = cloneSeries(s)
	return nil
}

func (r *Repository) DeleteSeries(ctx context.Context, seriesId uint64) error {
	defer r.lock()()
	delete(r.state.seriesById, seriesId)
	return nil
}

func (r *Repository) CreateEdition(ctx context.Context, edition *entity.Edition) error {
	defer r.lock()()
	tokenId := edition.TokenId()
	if _, ok := r.state.editions[tokenId]; ok {
		return errors.Errorf("edition %s already exists", tokenId)
	}
	r.state.editions[tokenId] = cloneEdition(edition)
	return nil
}

func (r *Repository) UpdateEdition(ctx context.Context, edition *entity.Edition) error {
	defer r.lock()()
	tokenId := edition.TokenId()
	if _, ok := r.state.editions[tokenId]; !ok {
		return errors.WithStack(errs.NotFound)
	}
	r.state.editions[tokenId] = cloneEdition(edition)
	return nil
}

func (r *Repository) SetRegistryInfo(ctx context.Context, info *entity.RegistryInfo) error {
	defer r.lock()()
	cloned := *info
	if info.BaseURI != nil {
		cloned.BaseURI = lo.ToPtr(*info.BaseURI)
	}
	r.state.info = &cloned
	return nil
}
