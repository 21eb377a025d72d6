package flow

import "agent-discovery/internal/model"

// Step is the outcome of NextStep: the next question to ask, or Complete.
type Step struct {
	ID       model.StepID
	Question model.DiscoveryQuestion
	Complete bool
}
