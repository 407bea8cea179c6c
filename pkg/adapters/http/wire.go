package http

import "github.com/aretw0/stagedash/pkg/domain"

// ListPipelinesResponse is the body of GET /pipelines.
type ListPipelinesResponse struct {
	Pipelines []PipelineSummary `json:"pipelines"`
}

// PipelineSummary names one pipeline in a listing.
type PipelineSummary struct {
	Name string `json:"name"`
}

// PipelineStateResponse is the body of GET /pipelines/{name}/state.
type PipelineStateResponse struct {
	PipelineName string       `json:"pipelineName"`
	StageStates  []StageState `json:"stageStates"`
}

// StageState reports one stage and its latest execution.
type StageState struct {
	StageName       string          `json:"stageName"`
	LatestExecution *StageExecution `json:"latestExecution,omitempty"`
}

// StageExecution holds the raw status of an execution.
type StageExecution struct {
	Status string `json:"status"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func mapPipelineFromDomain(p *domain.Pipeline) PipelineStateResponse {
	resp := PipelineStateResponse{
		PipelineName: p.Name,
		StageStates:  make([]StageState, 0, len(p.Stages)),
	}
	for _, st := range p.Stages {
		state := StageState{StageName: st.Name}
		if st.Latest != nil {
			state.LatestExecution = &StageExecution{Status: st.Latest.Raw}
		}
		resp.StageStates = append(resp.StageStates, state)
	}
	return resp
}

func mapPipelineToDomain(resp PipelineStateResponse) *domain.Pipeline {
	p := &domain.Pipeline{
		Name:   resp.PipelineName,
		Stages: make([]domain.Stage, 0, len(resp.StageStates)),
	}
	for _, st := range resp.StageStates {
		stage := domain.Stage{Name: st.StageName}
		if st.LatestExecution != nil {
			status := domain.ParseExecutionStatus(st.LatestExecution.Status)
			stage.Latest = &status
		}
		p.Stages = append(p.Stages, stage)
	}
	return p
}
