package game

import "time"

// Record is one committed hand: everything needed to take it back.
type Record struct {
	Seq         int
	Outcome     Outcome
	Settlement  Settlement
	Deltas      []int  // what was added to each score
	Before      Status // round state before the hand was applied
	Input       Draft  // input state that produced the outcome
	CommittedAt time.Time
}

// clone deep-copies the record so callers cannot reach the log's slices.
func (r Record) clone() Record {
	out := r
	if r.Outcome != nil {
		out.Outcome = r.Outcome.clone()
	}
	out.Deltas = append([]int(nil), r.Deltas...)
	out.Settlement = Settlement{
		Payments: append([]int(nil), r.Settlement.Payments...),
		Sticks:   append([]int(nil), r.Settlement.Sticks...),
	}
	out.Before = r.Before.Clone()
	out.Input = r.Input.clone()
	return out
}

// RecordLog is the undo stack of committed hands.
type RecordLog struct {
	records []Record
	nextSeq int
}

// NewRecordLog returns an empty log.
func NewRecordLog() *RecordLog {
	return &RecordLog{nextSeq: 1}
}

// Push appends a record and assigns its sequence number.
func (l *RecordLog) Push(r Record) Record {
	r = r.clone()
	r.Seq = l.nextSeq
	l.nextSeq++
	l.records = append(l.records, r)
	return r.clone()
}

// Pop removes and returns the most recent record. ok is false when the log
// is empty.
func (l *RecordLog) Pop() (r Record, ok bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	last := len(l.records) - 1
	r = l.records[last]
	l.records[last] = Record{}
	l.records = l.records[:last]
	l.nextSeq = r.Seq
	return r, true
}

// Last returns the most recent record without removing it.
func (l *RecordLog) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1].clone(), true
}

// Len returns the number of records.
func (l *RecordLog) Len() int {
	return len(l.records)
}

// Records returns a copy of the log, oldest first.
func (l *RecordLog) Records() []Record {
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[i] = r.clone()
	}
	return out
}
