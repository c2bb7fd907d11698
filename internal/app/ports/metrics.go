package ports

type DispatchMetrics interface {
	RecordSuccess(actionType string)
	RecordConflict()
	RecordFailure()
}
