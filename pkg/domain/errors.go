package domain

import "errors"

// ErrInvalidRegionCount is returned when a partition is requested with zero or fewer regions.
var ErrInvalidRegionCount = errors.New("invalid region count")

// ErrNegativeMargin is returned when a partition is requested with a negative margin.
var ErrNegativeMargin = errors.New("negative margin")

// ErrMissingStageName marks a stage record that cannot be displayed because it has no name.
var ErrMissingStageName = errors.New("stage has no name")

// ErrNoStages is returned when a pipeline has no displayable stage.
var ErrNoStages = errors.New("pipeline has no stages")

// ErrPipelineNotFound is returned when a pipeline cannot be found in the source.
var ErrPipelineNotFound = errors.New("pipeline not found")

// ErrNoPipelines is returned when the source reports no pipelines at all.
var ErrNoPipelines = errors.New("no pipelines")
