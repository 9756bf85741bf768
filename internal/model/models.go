package model

import (
	"encoding/json"
	"time"
)

type ID = uint

// TimeLayout is the wire format for session timestamps. Values carry no
// offset and are interpreted in the server's local zone.
const TimeLayout = "2006-01-02 15:04:05"

type Person struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	TagNum    string `json:"tagNum" db:"tag_num"`
	Email     string `json:"email" db:"email"`
	Role      Role   `json:"role" db:"role"`
}

func (p Person) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type Session struct {
	ID       ID `json:"id" db:"id"`
	PersonID ID `json:"personId" db:"person_id"`

	Start        time.Time  `json:"start" db:"start_time"`
	Stop         *time.Time `json:"stop" db:"stop_time"`
	BreakSeconds int64      `json:"breakSeconds" db:"break_seconds"`
}

func (s Session) Open() bool {
	return s.Stop == nil
}

// Duration reports the closed interval length in whole seconds, zero for an
// open session.
func (s Session) Duration() int64 {
	if s.Stop == nil {
		return 0
	}
	return int64(s.Stop.Sub(s.Start) / time.Second)
}

func (s Session) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID           ID      `json:"id"`
		PersonID     ID      `json:"personId"`
		Start        string  `json:"dateTimeStart"`
		Stop         *string `json:"dateTimeStop"`
		BreakSeconds int64   `json:"breakSeconds"`
	}

	w := wire{
		ID:           s.ID,
		PersonID:     s.PersonID,
		Start:        s.Start.Format(TimeLayout),
		BreakSeconds: s.BreakSeconds,
	}
	if s.Stop != nil {
		stop := s.Stop.Format(TimeLayout)
		w.Stop = &stop
	}

	return json.Marshal(w)
}

// SessionEntry is a session joined with its owner's name.
type SessionEntry struct {
	Session
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
}

func (e SessionEntry) MarshalJSON() ([]byte, error) {
	raw, err := e.Session.MarshalJSON()
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["firstName"] = e.FirstName
	fields["lastName"] = e.LastName

	return json.Marshal(fields)
}

type TotalTime struct {
	PersonID   ID     `json:"personId" yaml:"personId" db:"person_id"`
	SumTime    string `json:"sumTime" yaml:"sumTime" db:"sum_time"`
	DaysWorked int    `json:"daysWorked" yaml:"daysWorked" db:"days_worked"`
	BreakTime  string `json:"breakTime" yaml:"breakTime" db:"break_time"`
}

const ZeroClock = "00:00:00"

func NewTotalTime(person ID) TotalTime {
	return TotalTime{
		PersonID:  person,
		SumTime:   ZeroClock,
		BreakTime: ZeroClock,
	}
}

// PersonTotalTime is a summary joined with its owner's name.
type PersonTotalTime struct {
	PersonID   ID     `json:"personId" yaml:"personId" db:"person_id"`
	FirstName  string `json:"firstName" yaml:"firstName" db:"first_name"`
	LastName   string `json:"lastName" yaml:"lastName" db:"last_name"`
	SumTime    string `json:"sumTime" yaml:"sumTime" db:"sum_time"`
	DaysWorked int    `json:"daysWorked" yaml:"daysWorked" db:"days_worked"`
	BreakTime  string `json:"breakTime" yaml:"breakTime" db:"break_time"`
}
