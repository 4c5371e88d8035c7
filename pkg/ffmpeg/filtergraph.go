package ffmpeg

import (
	"fmt"
	"strings"

	"overlayr/pkg/models"
)

// Input 0 is the video and input 1 the silent audio track, so the first
// snippet is input 2.
const firstSnippetInput = 2

// baseMixInput is the stream placed in front of every delayed snippet in the
// mixdown.
const baseMixInput = "0"

type FilterClause interface {
	String() string
}

// DelayClause shifts one input stream by the same delay on both channels.
type DelayClause struct {
	Input       int
	DelayMillis int
	Label       string
}

func (clause DelayClause) String() string {
	return fmt.Sprintf("[%d]adelay=%d|%d[%s]", clause.Input, clause.DelayMillis, clause.DelayMillis, clause.Label)
}

// MixClause mixes every listed stream into one.
type MixClause struct {
	Inputs []string
}

func (clause MixClause) String() string {
	var sb strings.Builder
	for _, input := range clause.Inputs {
		sb.WriteString("[")
		sb.WriteString(input)
		sb.WriteString("]")
	}
	fmt.Fprintf(&sb, "amix=inputs=%d", len(clause.Inputs))
	return sb.String()
}

// FilterGraph collects delay clauses and renders them followed by a single
// mixdown of the base stream and every delayed label.
type FilterGraph struct {
	delays []DelayClause
}

func NewFilterGraph(events models.SoundEvents) *FilterGraph {
	graph := &FilterGraph{delays: make([]DelayClause, 0, len(events))}
	for _, event := range events {
		graph.AddDelay(event)
	}
	return graph
}

// AddDelay appends a delay clause for the next snippet input.
func (graph *FilterGraph) AddDelay(event models.SoundEvent) DelayClause {
	clause := DelayClause{
		Input:       firstSnippetInput + len(graph.delays),
		DelayMillis: event.DelayMillis,
		Label:       event.Label(),
	}
	graph.delays = append(graph.delays, clause)
	return clause
}

func (graph *FilterGraph) Delays() []DelayClause {
	return append([]DelayClause(nil), graph.delays...)
}

func (graph *FilterGraph) Mix() MixClause {
	inputs := make([]string, 0, len(graph.delays)+1)
	inputs = append(inputs, baseMixInput)
	for _, clause := range graph.delays {
		inputs = append(inputs, clause.Label)
	}
	return MixClause{Inputs: inputs}
}

func (graph *FilterGraph) Clauses() []FilterClause {
	clauses := make([]FilterClause, 0, len(graph.delays)+1)
	for _, clause := range graph.delays {
		clauses = append(clauses, clause)
	}
	return append(clauses, graph.Mix())
}

func (graph *FilterGraph) String() string {
	clauses := graph.Clauses()
	parts := make([]string, len(clauses))
	for i, clause := range clauses {
		parts[i] = clause.String()
	}
	return strings.Join(parts, ";")
}
