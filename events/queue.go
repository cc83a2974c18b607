// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Queue is a FIFO event queue. Events are returned by [Queue.NextEvent]
// in the order they were sent. It is not safe for concurrent use: the
// window sends events from its callbacks and the app drains them, both
// on the thread that owns the window. The zero value is an empty queue.
type Queue struct {
	events []Event
	head   int
}

// NewQueue returns an empty [Queue].
func NewQueue() *Queue {
	return &Queue{}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	if q.head == len(q.events) {
		return nil
	}
	ev := q.events[q.head]
	q.events[q.head] = nil
	q.head++
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return ev
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events) - q.head
}

// Drain calls fn on each queued event in arrival order, until the
// queue is empty or fn returns false. Events sent by fn are drained
// in the same call. It returns the number of events passed to fn.
func (q *Queue) Drain(fn func(ev Event) bool) int {
	n := 0
	for {
		ev := q.NextEvent()
		if ev == nil {
			return n
		}
		n++
		if !fn(ev) {
			return n
		}
	}
}
