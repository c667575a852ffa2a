package eventsink

import (
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Record is the serialized form of a completed transition.
type Record struct {
	MachineID  string         `json:"machine_id,omitempty"`
	Machine    string         `json:"machine,omitempty"`
	Transition fsm.Transition `json:"transition"`
	From       fsm.State      `json:"from"`
	To         fsm.State      `json:"to"`
	Data       any            `json:"data,omitempty"`
	Time       time.Time      `json:"time"`
}

// NewRecord builds a Record from an event.
func NewRecord(machine string, e fsm.Event, at time.Time) Record {
	return Record{
		MachineID:  e.MachineID,
		Machine:    machine,
		Transition: e.Transition,
		From:       e.From,
		To:         e.To,
		Data:       e.Data,
		Time:       at,
	}
}
