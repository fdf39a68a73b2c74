package wcif

import (
	"encoding/json"
	"fmt"
)

// Extension ids of the payloads this package knows about.
const (
	GroupifierActivityConfigID    = "groupifier.ActivityConfig"
	GroupifierCompetitionConfigID = "groupifier.CompetitionConfig"
	GroupifierRoomConfigID        = "groupifier.RoomConfig"
	// Delegate Dashboard documents com.delegate-dashboard.groups but writes
	// this id in practice.
	DelegateDashboardGroupsID = "undefined.groups"
)

// Extension is an application-specific payload attached to a document node.
// Data is kept undecoded.
type Extension struct {
	ID      string          `json:"id" yaml:"id"`
	SpecURL string          `json:"specUrl" yaml:"specUrl"`
	Data    json.RawMessage `json:"data" yaml:"-"`
}

// Decode unmarshals the payload into v.
func (e Extension) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("wcif: extension %s: %w", e.ID, err)
	}
	return nil
}

func (e Extension) MarshalYAML() (any, error) {
	var data any
	if len(e.Data) > 0 {
		if err := json.Unmarshal(e.Data, &data); err != nil {
			return nil, fmt.Errorf("wcif: extension %s: %w", e.ID, err)
		}
	}
	return struct {
		ID      string `yaml:"id"`
		SpecURL string `yaml:"specUrl"`
		Data    any    `yaml:"data"`
	}{e.ID, e.SpecURL, data}, nil
}

// FindExtension returns the first extension with the given id.
func FindExtension(exts []Extension, id string) (Extension, bool) {
	for _, e := range exts {
		if e.ID == id {
			return e, true
		}
	}
	return Extension{}, false
}

type GroupifierActivityConfig struct {
	Capacity                      float32     `json:"capacity"`
	Groups                        uint32      `json:"groups"`
	Scramblers                    uint32      `json:"scramblers"`
	Runners                       uint32      `json:"runners"`
	AssignJudges                  bool        `json:"assignJudges"`
	FeaturedCompetitorsWCAUserIDs []WCAUserID `json:"featuredCompetitorsWcaUserIds,omitempty"`
}

type GroupifierCompetitionConfig struct {
	LocalNamesFirst         bool    `json:"localNamesFirst"`
	ScorecardsBackgroundURL string  `json:"scorecardsBackgroundUrl"`
	CompetitorsSortingRule  string  `json:"competitorsSortingRule"`
	NoTasksForNewcomers     bool    `json:"noTasksForNewcomers"`
	TasksForOwnEventsOnly   bool    `json:"tasksForOwnEventsOnly"`
	NoRunningForForeigners  *bool   `json:"noRunningForForeigners,omitempty"`
	PrintStations           *bool   `json:"printStations,omitempty"`
	ScorecardPaperSize      *string `json:"scorecardPaperSize,omitempty"`
	ScorecardOrder          *string `json:"scorecardOrder,omitempty"`
}

type GroupifierRoomConfig struct {
	Stations uint32 `json:"stations"`
}

type DelegateDashboardGroups struct {
	Groups                      uint32 `json:"groups"`
	SpreadGroupsAcrossAllStages *bool  `json:"spreadGroupsAcrossAllStages,omitempty"`
}

// GroupCount returns the number of groups configured for an activity by
// either Groupifier or Delegate Dashboard.
func (a *Activity) GroupCount() (uint32, bool) {
	if ext, ok := FindExtension(a.Extensions, GroupifierActivityConfigID); ok {
		var cfg GroupifierActivityConfig
		if ext.Decode(&cfg) == nil {
			return cfg.Groups, true
		}
	}
	if ext, ok := FindExtension(a.Extensions, DelegateDashboardGroupsID); ok {
		var cfg DelegateDashboardGroups
		if ext.Decode(&cfg) == nil {
			return cfg.Groups, true
		}
	}
	return 0, false
}
