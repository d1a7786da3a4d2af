package server

import (
	"github.com/h4z31/bouyomi/rpc/common"
	"sync"
	"time"
)

// Task is a talk request waiting in or playing from the queue
type Task struct {
	Message string
	Config  common.TalkConfig
}

// QueueState is a snapshot of the queue
type QueueState struct {
	Paused  bool
	Playing bool
	Current *Task
	Waiting []Task
}

// playingTask is the task at the head of the queue and its remaining play time
type playingTask struct {
	Task
	remaining time.Duration
}

// QueueAdapter emulates the task queue of the speech application.
// It implements IRPCServerAdapter.
type QueueAdapter struct {
	mu       sync.Mutex
	clock    func() time.Time
	duration time.Duration
	last     time.Time
	paused   bool
	current  *playingTask
	waiting  []Task
}

// NewQueueAdapter creates an empty, unpaused queue.
// Every task plays for taskDuration, a taskDuration of 0 lets a task play until it is skipped or cleared.
// clock is used to measure play time, nil uses time.Now.
func NewQueueAdapter(taskDuration time.Duration, clock func() time.Time) *QueueAdapter {
	if clock == nil {
		clock = time.Now
	}
	return &QueueAdapter{
		clock:    clock,
		duration: taskDuration,
		last:     clock(),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IRPCServerAdapter)
// --------------------------------------------------------------------------

func (q *QueueAdapter) Handle(req *common.Request) *common.Response {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.advance()

	switch req.Cmd {
	case common.CmdTalk:
		q.waiting = append(q.waiting, Task{Message: req.Message, Config: req.Config})
		if q.current == nil && !q.paused {
			q.startNext()
		}
	case common.CmdPause:
		q.paused = true
	case common.CmdResume:
		q.paused = false
		if q.current == nil {
			q.startNext()
		}
	case common.CmdSkip:
		q.startNext()
	case common.CmdClear:
		q.current = nil
		q.waiting = nil
	case common.CmdGetPause:
		return common.NewBoolResponse(req.Cmd, q.paused)
	case common.CmdGetNowPlaying:
		return common.NewBoolResponse(req.Cmd, q.current != nil && !q.paused)
	case common.CmdGetTaskCount:
		return common.NewCountResponse(uint32(len(q.waiting)))
	default:
		Logger.Warningf("Ignoring unsupported command %s", req.Cmd)
	}

	return nil
}

// State returns a snapshot of the queue
func (q *QueueAdapter) State() QueueState {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.advance()

	state := QueueState{
		Paused:  q.paused,
		Playing: q.current != nil && !q.paused,
		Waiting: append([]Task(nil), q.waiting...),
	}
	if q.current != nil {
		current := q.current.Task
		state.Current = &current
	}
	return state
}

// --------------------------------------------------------------------------
// Helper Methods (must be called with the lock held)
// --------------------------------------------------------------------------

// advance finishes all tasks whose play time has elapsed since the last call.
// Play time does not pass while paused.
func (q *QueueAdapter) advance() {
	now := q.clock()
	elapsed := now.Sub(q.last)
	q.last = now

	if q.paused || q.duration <= 0 {
		return
	}

	for q.current != nil {
		if elapsed < q.current.remaining {
			q.current.remaining -= elapsed
			return
		}
		elapsed -= q.current.remaining
		Logger.Debugf("Finished task %q", q.current.Message)
		q.startNext()
	}
}

// startNext drops the current task and moves the first waiting task to the head of the queue
func (q *QueueAdapter) startNext() {
	if len(q.waiting) == 0 {
		q.current = nil
		return
	}

	q.current = &playingTask{Task: q.waiting[0], remaining: q.duration}
	q.waiting = q.waiting[1:]
	Logger.Debugf("Playing task %q (%d waiting)", q.current.Message, len(q.waiting))
}
