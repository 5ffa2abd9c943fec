package pooling

const defaultPoolSize = 8 * 1024 * 1024 // 8MiB
const defaultRegionSize = 8192

// Config provides the sizing of a region pool.
type Config interface {
	// PoolSize returns the total amount of bytes backing the pool.
	PoolSize() int

	// RegionSize returns the size of each region handed out.
	RegionSize() int
}

// NewConfig returns the default pool configuration.
func NewConfig() Config {
	return &config{
		poolSize:   defaultPoolSize,
		regionSize: defaultRegionSize,
	}
}

type config struct {
	poolSize   int
	regionSize int
}

func (c *config) PoolSize() int {
	return c.poolSize
}

func (c *config) RegionSize() int {
	return c.regionSize
}
