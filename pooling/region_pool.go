package pooling

import (
	"github.com/polarstreams/fillbuf/internal/metrics"
	"github.com/rs/zerolog/log"
)

// RegionPool hands out fixed-size byte regions sliced from a single shared
// allocation.
//
// Freed regions are reused as-is: their previous contents come back stale,
// which is exactly the case fillbuf.NewUninitSliceBuffer exists for.
type RegionPool interface {
	// Get returns a region, blocking until one is available.
	Get() []byte

	// Free returns a region to the pool. The region must have been obtained
	// from this pool and must not be used after freeing it.
	Free(region []byte)

	// RegionSize returns the size of the regions handed out.
	RegionSize() int
}

type regionPool struct {
	availableRegions chan []byte
	owned            map[*byte]bool // read-only after construction
	size             int
}

// NewRegionPool returns a pool backed by a single allocation of the
// configured size. The pool is thread safe (goroutine safe).
func NewRegionPool(config Config) RegionPool {
	size := config.RegionSize()
	if size <= 0 {
		log.Panic().Int("regionSize", size).Msgf("Region size must be positive")
	}
	regions := config.PoolSize() / size
	if regions == 0 {
		log.Panic().
			Int("poolSize", config.PoolSize()).
			Int("regionSize", size).
			Msgf("Pool size is smaller than a single region")
	}

	pool := &regionPool{
		availableRegions: make(chan []byte, regions),
		owned:            make(map[*byte]bool, regions),
		size:             size,
	}

	// Use a single allocation that gets sliced
	shared := make([]byte, regions*size)
	for i := 0; i < regions; i++ {
		region := shared[i*size : (i+1)*size : (i+1)*size]
		pool.owned[&region[0]] = true
		pool.availableRegions <- region
	}

	metrics.PoolAvailableBytes.Set(float64(regions * size))
	log.Debug().Msgf("Created region pool with %d regions of %d bytes", regions, size)
	return pool
}

func (p *regionPool) Get() []byte {
	region := <-p.availableRegions
	metrics.PoolAvailableBytes.Sub(float64(p.size))
	metrics.PoolGets.Inc()
	return region
}

func (p *regionPool) Free(region []byte) {
	if len(region) != p.size || !p.owned[&region[0]] {
		log.Panic().Int("length", len(region)).Msgf("Freed region does not belong to the pool")
	}
	p.availableRegions <- region
	metrics.PoolAvailableBytes.Add(float64(p.size))
}

func (p *regionPool) RegionSize() int {
	return p.size
}
