package domain

// WorkflowPath identifies one of the four fixed escalation paths. The path is
// derived from (ComplaintType, ComplaintScope) when a ticket is categorized
// and never changes afterwards.
type WorkflowPath string

const (
	PathMinorUnit        WorkflowPath = "MINOR_UNIT"
	PathMinorDirectorate WorkflowPath = "MINOR_DIRECTORATE"
	PathMajorUnit        WorkflowPath = "MAJOR_UNIT"
	PathMajorDirectorate WorkflowPath = "MAJOR_DIRECTORATE"
)

// WorkflowAction enumerates the transitions a caller can request.
type WorkflowAction string

const (
	ActionAttend    WorkflowAction = "ATTEND"
	ActionRecommend WorkflowAction = "RECOMMEND"
	ActionReverse   WorkflowAction = "REVERSE"
	ActionClose     WorkflowAction = "CLOSE"
)
