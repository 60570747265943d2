// SPDX-License-Identifier: MIT

package registry

import (
	"time"

	"github.com/google/uuid"
)

// Record is one logged operation.
type Record struct {
	ID       uuid.UUID `json:"id"`
	Seq      uint64    `json:"seq"`
	Time     time.Time `json:"time"`
	Op       string    `json:"op"`
	Operands []string  `json:"operands,omitempty"`
	Result   string    `json:"result,omitempty"`
	Err      string    `json:"error,omitempty"`
}

// OK reports whether the operation succeeded.
func (rec Record) OK() bool { return rec.Err == "" }

// Record appends an operation to the history and returns the stored record.
// operands and result are free text (names or short descriptions).
func (r *Registry) Record(op string, operands []string, result string, opErr error) Record {
	rec := Record{
		ID:       uuid.New(),
		Seq:      r.seq.Add(1),
		Time:     r.now(),
		Op:       op,
		Operands: append([]string(nil), operands...),
		Result:   result,
	}
	if opErr != nil {
		rec.Err = opErr.Error()
		rec.Result = ""
	}

	r.muHist.Lock()
	defer r.muHist.Unlock()
	r.history.Add(rec)
	for r.limit > 0 && r.history.Size() > r.limit {
		r.history.Remove(0)
	}

	return rec
}

// History returns the retained records, oldest first.
func (r *Registry) History() []Record {
	r.muHist.RLock()
	defer r.muHist.RUnlock()

	out := make([]Record, 0, r.history.Size())
	r.history.Each(func(_ int, v interface{}) {
		out = append(out, v.(Record))
	})

	return out
}

// ClearHistory drops every record. Sequence numbers keep increasing.
func (r *Registry) ClearHistory() {
	r.muHist.Lock()
	r.history.Clear()
	r.muHist.Unlock()
}
