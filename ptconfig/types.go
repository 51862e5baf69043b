package ptconfig

// BuilderMode selects which Hub-Labelling construction algorithm
// chrouter's Router.BuildLabels runs (hublabel.Build or
// hublabel.BuildFromCappedSearch) — spec.md §9 Open Question: "The HL builder has two
// variants... They are not semantically equivalent under all depth
// limits; implementers must choose one and document it."
type BuilderMode int

const (
	// BuilderModeLevelSweep processes vertices highest-level to lowest,
	// inheriting upward-neighbor labels (spec.md §4.I). This is the
	// default and the variant this module documents as authoritative.
	BuilderModeLevelSweep BuilderMode = iota

	// BuilderModeCappedSearch derives each vertex's labels from a single
	// CH-Dijkstra capped at HLDepthLimit hops instead of the top-down
	// sweep. NOT semantically equivalent to BuilderModeLevelSweep under
	// all depth limits — see hublabel.BuildFromCappedSearch's doc comment.
	BuilderModeCappedSearch
)

// PriorityWeights assigns an integer multiplier to each importance term
// registered with cpq.NewQueue (spec.md §4.E). A weight of 0 disables
// that term without removing it from the term list.
type PriorityWeights struct {
	EdgeDifference  int64
	DeletedNeighbor int64
	SearchSpace     int64
	VoronoiRegion   int64
}

// DefaultPriorityWeights mirrors the commonly cited road-network tuning
// (edge difference dominates, the others break ties and spread load).
func DefaultPriorityWeights() PriorityWeights {
	return PriorityWeights{
		EdgeDifference:  190,
		DeletedNeighbor: 120,
		SearchSpace:     1,
		VoronoiRegion:   60,
	}
}

// Config is the resolved, immutable configuration for one build.
type Config struct {
	WitnessHopLimit int
	HLDepthLimit    int
	Weights         PriorityWeights
	Mode            BuilderMode
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithWitnessHopLimit overrides the bounded witness search's hop ceiling
// H (spec.md §4.D default is 10). Panics if limit <= 0.
func WithWitnessHopLimit(limit int) Option {
	if limit <= 0 {
		panic("ptconfig: witness hop limit must be positive")
	}

	return func(c *Config) { c.WitnessHopLimit = limit }
}

// WithHLDepthLimit sets the depth cap used only by BuilderModeCappedSearch
// (spec.md §6, "hl_depth_limit"). 0 means unbounded/full, the default.
// Panics if limit < 0.
func WithHLDepthLimit(limit int) Option {
	if limit < 0 {
		panic("ptconfig: HL depth limit must be non-negative")
	}

	return func(c *Config) { c.HLDepthLimit = limit }
}

// WithPriorityWeights replaces the contraction priority-term weights.
func WithPriorityWeights(w PriorityWeights) Option {
	return func(c *Config) { c.Weights = w }
}

// WithBuilderMode selects the Hub-Labelling construction algorithm.
func WithBuilderMode(mode BuilderMode) Option {
	return func(c *Config) { c.Mode = mode }
}

// New returns a Config initialized with defaults, then applies each
// Option in order (later options win).
//
// Defaults: WitnessHopLimit=10, HLDepthLimit=0 (unbounded),
// Weights=DefaultPriorityWeights(), Mode=BuilderModeLevelSweep.
func New(opts ...Option) *Config {
	cfg := &Config{
		WitnessHopLimit: 10,
		HLDepthLimit:    0,
		Weights:         DefaultPriorityWeights(),
		Mode:            BuilderModeLevelSweep,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
