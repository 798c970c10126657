package asset

import (
	"github.com/rs/zerolog"

	"github.com/megameng/launcher/config"
)

// Handle is an opaque reference to a resolved asset
// The core never inspects it; the render adapter knows what it holds
type Handle any

// Resolver probes an asset reference for existence
// Supplied by the embedding application. The core retries nothing; an
// unresolved asset stays non-displayable for the session
type Resolver interface {
	Resolve(assetRef string) (Handle, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface
type ResolverFunc func(assetRef string) (Handle, bool)

func (f ResolverFunc) Resolve(assetRef string) (Handle, bool) {
	return f(assetRef)
}

// ResolvedItem is an ItemConfig plus its resolution outcome
// An item with Resolved=false is never displayable regardless of Visible
type ResolvedItem struct {
	config.ItemConfig
	Resolved bool
	Handle   Handle
}

// Registry holds the resolution results for one configuration load
// Replaces use-time string-keyed lookups: every item is probed exactly once,
// before the core runs
type Registry struct {
	items  []ResolvedItem
	byCode map[string]int
}

// NewRegistry probes every item through r and records the outcome
func NewRegistry(items []config.ItemConfig, r Resolver, log zerolog.Logger) *Registry {
	reg := &Registry{
		items:  make([]ResolvedItem, 0, len(items)),
		byCode: make(map[string]int, len(items)),
	}

	for _, it := range items {
		handle, ok := r.Resolve(it.AssetRef)
		if !ok {
			log.Warn().Str("code", it.Code).Str("asset", it.AssetRef).
				Msg("asset unresolved, item excluded for this session")
		}
		reg.items = append(reg.items, ResolvedItem{
			ItemConfig: it,
			Resolved:   ok,
			Handle:     handle,
		})
		if _, dup := reg.byCode[it.Code]; !dup {
			// First occurrence wins on duplicate codes, matching array-order
			// tie breaking elsewhere
			reg.byCode[it.Code] = len(reg.items) - 1
		}
	}

	return reg
}

// Items returns all items in configuration order, resolved or not
func (reg *Registry) Items() []ResolvedItem {
	return reg.items
}

// Lookup returns the item registered under code
func (reg *Registry) Lookup(code string) (ResolvedItem, bool) {
	i, ok := reg.byCode[code]
	if !ok {
		return ResolvedItem{}, false
	}
	return reg.items[i], true
}
