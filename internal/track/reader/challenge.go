package reader

import (
	"strings"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

func (r *trackReader) readChallenges(doc map[string]any, operations []track.Operation) ([]track.Challenge, error) {
	specs, err := r.list(doc, "challenges", "", false)
	if err != nil {
		return nil, err
	}

	ops := make(map[string]track.Operation, len(operations))
	for _, op := range operations {
		ops[op.Name] = op
	}

	known := make(map[string]bool, len(specs))
	challenges := make([]track.Challenge, 0, len(specs))
	var defaultChallenge string
	for i, raw := range specs {
		spec, err := r.element(raw, "challenges", i)
		if err != nil {
			return nil, err
		}
		name, err := r.str(spec, "name", "challenges", true)
		if err != nil {
			return nil, err
		}
		if known[name] {
			return nil, r.errorf("Duplicate challenge with name '%s'.", name)
		}
		known[name] = true

		c, err := r.readChallenge(spec, ops)
		if err != nil {
			return nil, err
		}

		if c.Default {
			if defaultChallenge != "" {
				return nil, r.errorf("Both '%s' and '%s' are defined as default challenges. "+
					"Please define only one of them as default.", defaultChallenge, c.Name)
			}
			defaultChallenge = c.Name
		}
		challenges = append(challenges, c)
	}

	if defaultChallenge == "" && len(challenges) > 0 {
		if len(challenges) > 1 {
			names := make([]string, 0, len(challenges))
			for _, c := range challenges {
				names = append(names, c.Name)
			}
			return nil, r.errorf("No default challenge specified. Please edit the track and add \"default\": true "+
				"to one of the challenges %s.", strings.Join(names, ", "))
		}
		challenges[0].Default = true
	}
	return challenges, nil
}

func (r *trackReader) readChallenge(spec map[string]any, ops map[string]track.Operation) (track.Challenge, error) {
	name, err := r.str(spec, "name", "challenges", true)
	if err != nil {
		return track.Challenge{}, err
	}
	description, err := r.str(spec, "description", name, true)
	if err != nil {
		return track.Challenge{}, err
	}
	isDefault, err := r.boolean(spec, "default", name, false)
	if err != nil {
		return track.Challenge{}, err
	}
	meta, err := r.object(spec, keyMeta, name)
	if err != nil {
		return track.Challenge{}, err
	}
	indexSettings, err := r.object(spec, "index-settings", name)
	if err != nil {
		return track.Challenge{}, err
	}
	entries, err := r.list(spec, "schedule", name, true)
	if err != nil {
		return track.Challenge{}, err
	}

	schedule := make([]track.ScheduleEntry, 0, len(entries))
	for i, raw := range entries {
		entrySpec, err := r.element(raw, path(name, "schedule"), i)
		if err != nil {
			return track.Challenge{}, err
		}
		entry, err := r.readScheduleEntry(entrySpec, name, ops)
		if err != nil {
			return track.Challenge{}, err
		}
		schedule = append(schedule, entry)
	}

	return track.Challenge{
		Name:          name,
		Description:   description,
		Default:       isDefault,
		Meta:          meta,
		IndexSettings: indexSettings,
		Schedule:      schedule,
	}, nil
}
