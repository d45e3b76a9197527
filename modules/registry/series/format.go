package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// TokenDelimiter separates the series id from the edition number in a token id.
	// E.g. "42:2" where 42 is the series and 2 is the edition.
	TokenDelimiter = ":"
	// TitleDelimiter separates the series title from the edition fraction in a
	// display title. E.g. "Title — 2/10" where 10 is max copies.
	TitleDelimiter = " — "
	// EditionDelimiter separates the edition number from the copies cap in a
	// display title. E.g. "Title — 2/10".
	EditionDelimiter = "/"
)

// Delimiters returns the three delimiter strings used to compose token ids and
// display titles, so that callers never hard-code them.
func Delimiters() (token, title, edition string) {
	return TokenDelimiter, TitleDelimiter, EditionDelimiter
}

// TokenId is a composite identifier of a single edition: "<seriesId>:<editionNumber>".
type TokenId struct {
	SeriesId      uint64
	EditionNumber uint64
}

func NewTokenId(seriesId, editionNumber uint64) TokenId {
	return TokenId{
		SeriesId:      seriesId,
		EditionNumber: editionNumber,
	}
}

// NewTokenIdFromString parses a token id string. It is the strict inverse of
// TokenId.String: wrong delimiter count or a non-numeric component returns
// ErrMalformedIdentifier.
func NewTokenIdFromString(s string) (TokenId, error) {
	parts := strings.Split(s, TokenDelimiter)
	if len(parts) != 2 {
		return TokenId{}, errors.Wrapf(ErrMalformedIdentifier, "expected 2 components, got %d", len(parts))
	}
	seriesId, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return TokenId{}, errors.Wrapf(ErrMalformedIdentifier, "invalid series id %q", parts[0])
	}
	editionNumber, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return TokenId{}, errors.Wrapf(ErrMalformedIdentifier, "invalid edition number %q", parts[1])
	}
	return TokenId{SeriesId: seriesId, EditionNumber: editionNumber}, nil
}

func (t TokenId) String() string {
	return strconv.FormatUint(t.SeriesId, 10) + TokenDelimiter + strconv.FormatUint(t.EditionNumber, 10)
}

// FormatEditionTitle builds the display title of a single edition,
// e.g. ("Title", 2, 10) -> "Title — 2/10".
func FormatEditionTitle(seriesTitle string, editionNumber, cap uint64) string {
	return fmt.Sprintf("%s%s%d%s%d", seriesTitle, TitleDelimiter, editionNumber, EditionDelimiter, cap)
}
