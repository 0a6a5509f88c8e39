package set

type (
	setConfig struct {
		counter  *NodeCounter
		capacity int
	}

	Option func(cfg *setConfig)
)

// WithNodeCounter attaches a live node counter to the set and to every set
// cloned from it.
func WithNodeCounter(c *NodeCounter) Option {
	return func(cfg *setConfig) {
		cfg.counter = c
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(cfg *setConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

func buildConfig(options []Option) setConfig {
	var cfg setConfig
	for _, o := range options {
		o(&cfg)
	}
	return cfg
}
