// Package pipeline defines the stage abstraction and the inputs and results
// exchanged between bwvid stages.
package pipeline

import (
	"context"
)

// Stage is one step of a bwvid command: it consumes an input and produces
// a result.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Stage types of the bwvid commands.
type (
	ConvertStage = Stage[ConvertInput, ConvertResult]
	ShowStage    = Stage[ShowInput, ShowResult]
	ExportStage  = Stage[ExportInput, ExportResult]
	InspectStage = Stage[InspectInput, InspectResult]
)
