// Package testmode derives a fast-running variant of a track for smoke tests.
package testmode

import (
	"slices"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

// MaxTimePeriod is the upper bound in seconds for measurement time periods.
const MaxTimePeriod = 10

// Shrink returns a copy of t whose schedules run briefly: warmup time periods
// are dropped, time periods are capped at MaxTimePeriod and iteration counts are
// capped at the task's clients so that every client still does some work.
// t is not modified and the result shares no state with it.
func Shrink(t *track.Track) *track.Track {
	out := *t
	out.Indices = cloneIndices(t.Indices)
	out.Templates = slices.Clone(t.Templates)
	out.Operations = make([]track.Operation, 0, len(t.Operations))
	for _, op := range t.Operations {
		out.Operations = append(out.Operations, op.Clone())
	}

	out.Challenges = make([]track.Challenge, 0, len(t.Challenges))
	for _, c := range t.Challenges {
		schedule := make([]track.ScheduleEntry, 0, len(c.Schedule))
		for _, entry := range c.Schedule {
			schedule = append(schedule, shrinkEntry(entry))
		}
		out.Challenges = append(out.Challenges, track.Challenge{
			Name:          c.Name,
			Description:   c.Description,
			Default:       c.Default,
			Meta:          track.CloneMap(c.Meta),
			IndexSettings: track.CloneMap(c.IndexSettings),
			Schedule:      schedule,
		})
	}
	return &out
}

func shrinkEntry(entry track.ScheduleEntry) track.ScheduleEntry {
	switch e := entry.(type) {
	case *track.Task:
		return shrinkTask(e)
	case *track.Parallel:
		tasks := make([]*track.Task, 0, len(e.Tasks))
		for _, task := range e.Tasks {
			tasks = append(tasks, shrinkTask(task))
		}
		return &track.Parallel{Clients: e.Clients, Tasks: tasks}
	default:
		panic("testmode: unknown schedule entry")
	}
}

func shrinkTask(task *track.Task) *track.Task {
	out := task.Clone()
	if out.WarmupTimePeriod != nil {
		*out.WarmupTimePeriod = 0
	}
	if out.TimePeriod != nil {
		*out.TimePeriod = min(*out.TimePeriod, MaxTimePeriod)
	}
	if out.WarmupIterations != nil {
		*out.WarmupIterations = min(*out.WarmupIterations, out.Clients)
	}
	if out.Iterations != nil {
		*out.Iterations = min(*out.Iterations, out.Clients)
	}
	return out
}

func cloneIndices(indices []track.Index) []track.Index {
	out := make([]track.Index, 0, len(indices))
	for _, idx := range indices {
		idx.Types = slices.Clone(idx.Types)
		out = append(out, idx)
	}
	return out
}
