package entity

import "github.com/gaze-network/series-registry/modules/registry/series"

// RegistryInfo is the collection-level metadata of the whole registry.
// BaseURI, when set, prefixes every composed media URI.
type RegistryInfo struct {
	Name    string
	Symbol  string
	BaseURI *string
	OwnerId series.AccountId
}
