package track

import "encoding/json"

// ScheduleEntry is either a *Task or a *Parallel group.
type ScheduleEntry interface {
	// ClientCount is the number of clients the entry runs with in total.
	ClientCount() int
	// Leaves returns the tasks of the entry in declaration order.
	Leaves() []*Task

	scheduleEntry()
}

// Task runs a single operation. Time-based and iteration-based pacing are
// mutually exclusive per phase: WarmupIterations excludes TimePeriod and
// WarmupTimePeriod excludes Iterations.
type Task struct {
	Operation        Operation
	Clients          int
	WarmupTimePeriod *int
	TimePeriod       *int
	WarmupIterations *int
	Iterations       *int
	Params           map[string]any
	Meta             map[string]any
}

// Parallel runs its tasks concurrently. Clients is either the declared group
// total or the sum of the tasks' clients.
type Parallel struct {
	Clients int
	Tasks   []*Task
}

func (t *Task) ClientCount() int { return t.Clients }
func (t *Task) Leaves() []*Task  { return []*Task{t} }
func (*Task) scheduleEntry()     {}

func (p *Parallel) ClientCount() int { return p.Clients }
func (p *Parallel) Leaves() []*Task  { return p.Tasks }
func (*Parallel) scheduleEntry()     {}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	return &Task{
		Operation:        t.Operation.Clone(),
		Clients:          t.Clients,
		WarmupTimePeriod: cloneInt(t.WarmupTimePeriod),
		TimePeriod:       cloneInt(t.TimePeriod),
		WarmupIterations: cloneInt(t.WarmupIterations),
		Iterations:       cloneInt(t.Iterations),
		Params:           CloneMap(t.Params),
		Meta:             CloneMap(t.Meta),
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

type taskJSON struct {
	Operation        string         `json:"operation"`
	Clients          int            `json:"clients"`
	WarmupTimePeriod *int           `json:"warmup_time_period,omitempty"`
	TimePeriod       *int           `json:"time_period,omitempty"`
	WarmupIterations *int           `json:"warmup_iterations,omitempty"`
	Iterations       *int           `json:"iterations,omitempty"`
	Params           map[string]any `json:"params,omitempty"`
	Meta             map[string]any `json:"meta,omitempty"`
}

func (t *Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		Operation:        t.Operation.Name,
		Clients:          t.Clients,
		WarmupTimePeriod: t.WarmupTimePeriod,
		TimePeriod:       t.TimePeriod,
		WarmupIterations: t.WarmupIterations,
		Iterations:       t.Iterations,
		Params:           t.Params,
		Meta:             t.Meta,
	})
}

func (p *Parallel) MarshalJSON() ([]byte, error) {
	type group struct {
		Clients int     `json:"clients"`
		Tasks   []*Task `json:"tasks"`
	}
	return json.Marshal(map[string]group{
		"parallel": {Clients: p.Clients, Tasks: p.Tasks},
	})
}
