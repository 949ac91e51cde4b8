package metrics

import (
	"time"

	"github.com/google/uuid"
)

// ExplorationMetric summarizes one finished exploration run.
type ExplorationMetric struct {
	RunID         string
	Dimensions    string
	States        int           // Distinct states registered
	DedupHits     int           // Successor lookups that hit an existing state
	Moves         int           // Edges recorded (after duplicate collapse)
	Terminals     int           // Terminal states discovered
	MaxStackDepth int           // Peak size of the work stack
	Duration      time.Duration
}

type Collector interface {
	Start(dimensions string)
	AddState()
	AddDedupHit()
	AddMove()
	AddTerminal()
	ObserveStackDepth(depth int)
	Complete() ExplorationMetric
}

type collector struct {
	runID         string
	dimensions    string
	startTime     time.Time
	states        int
	dedupHits     int
	moves         int
	terminals     int
	maxStackDepth int
}

func NewCollector() Collector {
	return &collector{runID: uuid.NewString()}
}

func (m *collector) Start(dimensions string) {
	m.startTime = time.Now()
	m.dimensions = dimensions
}

func (m *collector) AddState() {
	m.states++
}

func (m *collector) AddDedupHit() {
	m.dedupHits++
}

func (m *collector) AddMove() {
	m.moves++
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) ObserveStackDepth(depth int) {
	if depth > m.maxStackDepth {
		m.maxStackDepth = depth
	}
}

func (m *collector) Complete() ExplorationMetric {
	return ExplorationMetric{
		RunID:         m.runID,
		Dimensions:    m.dimensions,
		States:        m.states,
		DedupHits:     m.dedupHits,
		Moves:         m.moves,
		Terminals:     m.terminals,
		MaxStackDepth: m.maxStackDepth,
		Duration:      time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(dimensions string)     {}
func (m *dummyCollector) AddState()                   {}
func (m *dummyCollector) AddDedupHit()                {}
func (m *dummyCollector) AddMove()                    {}
func (m *dummyCollector) AddTerminal()                {}
func (m *dummyCollector) ObserveStackDepth(depth int) {}
func (m *dummyCollector) Complete() ExplorationMetric { return ExplorationMetric{} }
