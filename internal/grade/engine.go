package grade

// Engine bundles detection, normalization and re-projection over one
// registry. It is the entry point used by the pipeline and the HTTP API.
type Engine struct {
	registry     *Registry
	detector     *Detector
	normalizer   *Normalizer
	denormalizer *Denormalizer
}

// NewEngine creates an Engine. A nil registry builds the default tables.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	detector := NewDetector()
	return &Engine{
		registry:     registry,
		detector:     detector,
		normalizer:   NewNormalizer(registry, detector),
		denormalizer: NewDenormalizer(registry),
	}
}

// Registry returns the engine's tables.
func (e *Engine) Registry() *Registry { return e.registry }

// DetectScale returns the scale of token, or Undetermined.
func (e *Engine) DetectScale(token string) Scale {
	return e.detector.Detect(token)
}

// Normalize returns the ordinal of token; 0 when unclassified.
func (e *Engine) Normalize(token string, discipline Discipline) float64 {
	return e.normalizer.Normalize(token, discipline)
}

// Classify returns the full normalization result for token.
func (e *Engine) Classify(token string, discipline Discipline) Result {
	return e.normalizer.Classify(token, discipline)
}

// NormalizeAs normalizes token in a known scale.
func (e *Engine) NormalizeAs(token string, scale Scale, discipline Discipline) Result {
	return e.normalizer.NormalizeAs(token, scale, discipline)
}

// Denormalize renders ordinal in scale.
func (e *Engine) Denormalize(ordinal float64, scale Scale) string {
	return e.denormalizer.Denormalize(ordinal, scale)
}

// Convert renders token in another scale via the ordinal axis.
func (e *Engine) Convert(token string, discipline Discipline, target Scale) string {
	return e.Denormalize(e.Normalize(token, discipline), target)
}
