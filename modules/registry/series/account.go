package series

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// AccountId is an opaque account identifier provided by the host runtime. The
// registry only performs equality and capability checks against it.
type AccountId string

const (
	MinAccountIdLen = 2
	MaxAccountIdLen = 64
)

// accountIdPattern matches lowercase alphanumeric parts separated by a single
// ".", "-" or "_" each.
var accountIdPattern = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`)

func (a AccountId) String() string {
	return string(a)
}

// Valid reports whether the account id is well-formed.
func (a AccountId) Valid() bool {
	return len(a) >= MinAccountIdLen && len(a) <= MaxAccountIdLen && accountIdPattern.MatchString(string(a))
}

// NewAccountId validates and returns an AccountId.
func NewAccountId(s string) (AccountId, error) {
	a := AccountId(s)
	if !a.Valid() {
		return "", errors.Wrapf(ErrInvalidMetadata, "invalid account id %q", s)
	}
	return a, nil
}
