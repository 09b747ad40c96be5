// Package sampledata serves the read only timeline fixture used by the wireframe.
package sampledata

import (
	_ "embed"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

const DateLayout = "2006-01-02"

const GoalStatusActive = "active"

//go:embed sample.yaml
var sampleFile []byte

type Goal struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	Status      string `yaml:"status" json:"status"`
	Progress    int    `yaml:"progress" json:"progress"`
	TargetDate  string `yaml:"target_date" json:"target_date"`
}

type Entry struct {
	ID           string   `yaml:"id" json:"id"`
	Date         string   `yaml:"date" json:"date"`
	Title        string   `yaml:"title" json:"title"`
	Type         string   `yaml:"type" json:"type"`
	HealthRating int      `yaml:"health_rating" json:"health_rating"`
	Notes        string   `yaml:"notes" json:"notes"`
	Products     []string `yaml:"products" json:"products,omitempty"`
	GoalIDs      []string `yaml:"goal_ids" json:"goal_ids,omitempty"`
}

type Routine struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Frequency string   `yaml:"frequency" json:"frequency"`
	Steps     []string `yaml:"steps" json:"steps"`
}

type Insight struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Body     string `yaml:"body" json:"body"`
	Category string `yaml:"category" json:"category"`
}

type Event struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Type  string `yaml:"type" json:"type"`
	Time  string `yaml:"time" json:"time"`
}

type Document struct {
	Goals          []Goal             `yaml:"goals" json:"goals"`
	Entries        []Entry            `yaml:"entries" json:"entries"`
	Routines       []Routine          `yaml:"routines" json:"routines"`
	Insights       []Insight          `yaml:"insights" json:"insights"`
	CalendarEvents map[string][]Event `yaml:"calendar_events" json:"calendar_events"`
}

var doc = mustLoad(sampleFile)

func mustLoad(raw []byte) Document {
	var d Document
	if err := yaml.Unmarshal(raw, &d); err != nil {
		panic(err)
	}
	return d
}

func cloneEntry(e Entry) Entry {
	e.Products = slices.Clone(e.Products)
	e.GoalIDs = slices.Clone(e.GoalIDs)
	return e
}

func cloneRoutine(r Routine) Routine {
	r.Steps = slices.Clone(r.Steps)
	return r
}

// Get returns a deep copy of the whole fixture.
func Get() Document {
	d := Document{
		Goals:          slices.Clone(doc.Goals),
		Entries:        make([]Entry, 0, len(doc.Entries)),
		Routines:       make([]Routine, 0, len(doc.Routines)),
		Insights:       slices.Clone(doc.Insights),
		CalendarEvents: make(map[string][]Event, len(doc.CalendarEvents)),
	}
	for _, e := range doc.Entries {
		d.Entries = append(d.Entries, cloneEntry(e))
	}
	for _, r := range doc.Routines {
		d.Routines = append(d.Routines, cloneRoutine(r))
	}
	for k, v := range doc.CalendarEvents {
		d.CalendarEvents[k] = slices.Clone(v)
	}
	return d
}

func GetGoalByID(id string) (Goal, bool) {
	for _, g := range doc.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// GetEntriesByDateRange returns the entries dated within [start, end], both days included.
func GetEntriesByDateRange(start, end time.Time) []Entry {
	from := start.Format(DateLayout)
	to := end.Format(DateLayout)

	res := make([]Entry, 0)
	for _, e := range doc.Entries {
		if e.Date >= from && e.Date <= to {
			res = append(res, cloneEntry(e))
		}
	}
	return res
}

func GetActiveGoals() []Goal {
	res := make([]Goal, 0)
	for _, g := range doc.Goals {
		if g.Status == GoalStatusActive {
			res = append(res, g)
		}
	}
	return res
}

func GetTodayEvents(now time.Time) []Event {
	return slices.Clone(doc.CalendarEvents[now.Format(DateLayout)])
}
