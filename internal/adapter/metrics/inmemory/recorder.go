package inmemory

import "sync"

type Snapshot struct {
	DispatchTotal    uint64            `json:"dispatch_total"`
	DispatchSuccess  uint64            `json:"dispatch_success"`
	DispatchConflict uint64            `json:"dispatch_conflict"`
	DispatchFailure  uint64            `json:"dispatch_failure"`
	ByActionType     map[string]uint64 `json:"by_action_type"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byAction map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(actionType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byAction[actionType]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := Snapshot{
		DispatchSuccess:  r.success,
		DispatchConflict: r.conflict,
		DispatchFailure:  r.failure,
		DispatchTotal:    r.success + r.conflict + r.failure,
		ByActionType:     make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byAction {
		out.ByActionType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
