package binding

import (
	"go.uber.org/zap"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/errors"
)

// LoadOption configures a Load call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	filter gldispatch.AddrFilter
}

// WithFilter installs an address filter applied to every resolved value
// before it is cached. Platforms whose resolvers return non-zero
// placeholder addresses for unsupported entry points use this to squash
// them to the unsupported sentinel; the core does not guess a fixed
// exclusion list itself.
func WithFilter(f gldispatch.AddrFilter) LoadOption {
	return func(c *loadConfig) { c.filter = f }
}

// Load resolves every entry point of the Set's table through gc's
// resolver and writes the results into the cache.
//
// A nil context, or a context whose ProcResolver returns nil, yields a
// no_context configuration error before any slot is touched; the cache
// is never partially mutated by a failed Load. Load is not retried
// internally; establishing a context and calling again is the caller's
// decision.
//
// Load is idempotent and is the re-resolution path after the active
// context changes (a new GPU or driver): it simply overwrites every
// slot. It holds the Set's lock for the whole walk, so concurrent Loads
// on the same storage serialize. Concurrent readers are not blocked and
// may observe a mix of old and new values mid-walk; callers needing a
// consistent snapshot must serialize load-then-use themselves.
func Load(set *Set, gc gldispatch.Context, opts ...LoadOption) error {
	if gc == nil {
		return errors.NoContext("no active rendering context")
	}
	r := gc.ProcResolver()
	if r == nil {
		return errors.NoContext("active context has no entry-point resolver")
	}

	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	st := set.s
	st.mu.Lock()
	defer st.mu.Unlock()

	missing := 0
	for i := 0; i < st.table.Len(); i++ {
		name := st.table.NameBytes(i)
		addr := r.Resolve(name)
		if cfg.filter != nil {
			addr = cfg.filter(name, addr)
		}
		if addr == gldispatch.AddrNone {
			missing++
		}
		set.setAddr(i, addr)
	}
	st.loaded.Store(true)

	Logger().Debug("entry points loaded",
		zap.Int("total", st.table.Len()),
		zap.Int("resolved", st.table.Len()-missing),
		zap.Int("unsupported", missing),
	)

	return nil
}
