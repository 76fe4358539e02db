package trace

// TraceLevel controls the verbosity of generation tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSteps captures one record per produced prime.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelSteps: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// GenerationTrace collects step records while a generator advances.
type GenerationTrace struct {
	Config TraceConfig
	Steps  []StepRecord
}

// NewGenerationTrace creates a GenerationTrace ready for recording.
func NewGenerationTrace(config TraceConfig) *GenerationTrace {
	return &GenerationTrace{
		Config: config,
		Steps:  make([]StepRecord, 0),
	}
}

// RecordStep appends a step record.
func (gt *GenerationTrace) RecordStep(record StepRecord) {
	gt.Steps = append(gt.Steps, record)
}
