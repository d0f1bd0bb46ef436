package reader

import "github.com/DjordjeVuckovic/track-loader/internal/track"

const (
	keyParallel         = "parallel"
	keyOperation        = "operation"
	keyClients          = "clients"
	keyWarmupTimePeriod = "warmup-time-period"
	keyTimePeriod       = "time-period"
	keyWarmupIterations = "warmup-iterations"
	keyIterations       = "iterations"
	keyTasks            = "tasks"
)

// groupDefaults are the values a parallel group passes on to tasks that omit them.
type groupDefaults struct {
	warmupTimePeriod *int
	timePeriod       *int
}

func (r *trackReader) readScheduleEntry(spec map[string]any, challenge string, ops map[string]track.Operation) (track.ScheduleEntry, error) {
	if raw, ok := spec[keyParallel]; ok {
		return r.readParallel(raw, challenge, ops)
	}
	return r.readTask(spec, challenge, ops, groupDefaults{})
}

func (r *trackReader) readParallel(raw any, challenge string, ops map[string]track.Operation) (*track.Parallel, error) {
	spec, ok := raw.(map[string]any)
	if !ok {
		return nil, r.invalid(keyParallel, challenge, "an object", raw)
	}

	var (
		defaults groupDefaults
		err      error
	)
	if defaults.warmupTimePeriod, err = r.optionalInt(spec, keyWarmupTimePeriod, challenge); err != nil {
		return nil, err
	}
	if defaults.timePeriod, err = r.optionalInt(spec, keyTimePeriod, challenge); err != nil {
		return nil, err
	}
	clients, err := r.optionalInt(spec, keyClients, challenge)
	if err != nil {
		return nil, err
	}
	if clients != nil && *clients < 1 {
		return nil, r.invalid(path(keyParallel, keyClients), challenge, "a positive integer", *clients)
	}
	if _, ok := spec[keyTasks]; !ok {
		return nil, r.missing(path(keyParallel, keyTasks), challenge)
	}
	taskSpecs, err := r.list(spec, keyTasks, challenge, true)
	if err != nil {
		return nil, err
	}

	tasks := make([]*track.Task, 0, len(taskSpecs))
	sum := 0
	for i, rawTask := range taskSpecs {
		taskSpec, err := r.element(rawTask, path(challenge, keyParallel, keyTasks), i)
		if err != nil {
			return nil, err
		}
		task, err := r.readTask(taskSpec, challenge, ops, defaults)
		if err != nil {
			return nil, err
		}
		sum += task.Clients
		tasks = append(tasks, task)
	}

	// an explicit total is a cap for the whole group, it is not split across tasks
	total := sum
	if clients != nil {
		total = *clients
	}
	return &track.Parallel{Clients: total, Tasks: tasks}, nil
}

func (r *trackReader) readTask(spec map[string]any, challenge string, ops map[string]track.Operation, defaults groupDefaults) (*track.Task, error) {
	opName, err := r.str(spec, keyOperation, path(challenge, "schedule"), true)
	if err != nil {
		return nil, err
	}
	op, ok := ops[opName]
	if !ok {
		return nil, r.errorf("'schedule' for challenge '%s' contains a non-existing operation '%s'. "+
			"Please add an operation '%s' to the 'operations' block.", challenge, opName, opName)
	}

	clients := 1
	declaredClients, err := r.optionalInt(spec, keyClients, opName)
	if err != nil {
		return nil, err
	}
	if declaredClients != nil {
		if *declaredClients < 1 {
			return nil, r.invalid(keyClients, opName, "a positive integer", *declaredClients)
		}
		clients = *declaredClients
	}

	warmupTimePeriod, err := r.optionalInt(spec, keyWarmupTimePeriod, opName)
	if err != nil {
		return nil, err
	}
	timePeriod, err := r.optionalInt(spec, keyTimePeriod, opName)
	if err != nil {
		return nil, err
	}
	warmupIterations, err := r.optionalInt(spec, keyWarmupIterations, opName)
	if err != nil {
		return nil, err
	}
	iterations, err := r.optionalInt(spec, keyIterations, opName)
	if err != nil {
		return nil, err
	}
	meta, err := r.object(spec, keyMeta, opName)
	if err != nil {
		return nil, err
	}

	params := remaining(spec, keyOperation, keyClients, keyWarmupTimePeriod, keyTimePeriod,
		keyWarmupIterations, keyIterations, keyMeta)

	task := &track.Task{
		Operation:        op.Clone(),
		Clients:          clients,
		WarmupTimePeriod: inherit(warmupTimePeriod, defaults.warmupTimePeriod),
		TimePeriod:       inherit(timePeriod, defaults.timePeriod),
		WarmupIterations: warmupIterations,
		Iterations:       iterations,
		Params:           params,
		Meta:             meta,
	}
	if err := r.validatePacing(task, challenge); err != nil {
		return nil, err
	}
	return task, nil
}

// inherit takes the task's own value if declared and the group's value otherwise.
func inherit(own, group *int) *int {
	if own != nil {
		return own
	}
	if group != nil {
		return track.Int(*group)
	}
	return nil
}

func (r *trackReader) validatePacing(t *track.Task, challenge string) error {
	if t.WarmupIterations != nil && t.TimePeriod != nil {
		return r.errorf("Operation '%s' in challenge '%s' defines '%d' warmup iterations and a time period of '%d' seconds. "+
			"Please do not mix time periods and iterations.", t.Operation.Name, challenge, *t.WarmupIterations, *t.TimePeriod)
	}
	if t.WarmupTimePeriod != nil && t.Iterations != nil {
		return r.errorf("Operation '%s' in challenge '%s' defines a warmup time period of '%d' seconds and '%d' iterations. "+
			"Please do not mix time periods and iterations.", t.Operation.Name, challenge, *t.WarmupTimePeriod, *t.Iterations)
	}
	return nil
}
