package series

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Copies is the maximum number of editions ever mintable for a series. It
// decodes only from a true JSON integer: a numeric string or a fraction is
// rejected, so "10" can never silently become a cap of 10.
type Copies uint64

func (c Copies) Uint64() uint64 {
	return uint64(c)
}

func (c *Copies) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrInvalidMetadata, "copies must not be empty")
	}
	if data[0] == '"' {
		return errors.Wrap(ErrInvalidMetadata, "copies must be an integer, not a string")
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return errors.Wrapf(ErrInvalidMetadata, "copies must be an unsigned integer, got %s", string(data))
	}
	*c = Copies(v)
	return nil
}

func (c Copies) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(c), 10)), nil
}

// Metadata is the series-level metadata shared by all of its editions.
type Metadata struct {
	Title       string  `json:"title"`
	Media       string  `json:"media"`
	Copies      *Copies `json:"copies,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks the construction-time invariants of series metadata.
func (m Metadata) Validate() error {
	if m.Title == "" {
		return errors.Wrap(ErrInvalidMetadata, "title is required")
	}
	if m.Media == "" {
		return errors.Wrap(ErrInvalidMetadata, "media is required")
	}
	return nil
}

// MetadataPatch is a partial metadata update. Media and Copies are carried so
// that callers can be warned, but ApplySeriesPatch never applies them: media
// and copies changes must go through capping or a fresh series.
type MetadataPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Media       *string `json:"media,omitempty"`
	Copies      *Copies `json:"copies,omitempty"`
}
