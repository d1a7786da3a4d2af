package client

import "github.com/h4z31/bouyomi/rpc/common"

// IClient defines the operations offered by the application's collaboration interface.
// Every method opens its own connection, so implementations are safe for concurrent use.
type IClient interface {
	// Speak enqueues message with the default talk configuration.
	Speak(message string) error
	// SpeakWithConfig enqueues message with the given voice parameters.
	SpeakWithConfig(message string, config common.TalkConfig) error

	// Pause pauses playback. No answer is read.
	Pause() error
	// Resume resumes playback. No answer is read.
	Resume() error
	// Skip stops the task currently playing. No answer is read.
	Skip() error
	// Clear removes all tasks. No answer is read.
	Clear() error

	// IsPaused returns whether playback is paused.
	IsPaused() (bool, error)
	// IsPlaying returns whether a task is being spoken.
	IsPlaying() (bool, error)
	// RemainingTasks returns the number of tasks waiting in the queue.
	RemainingTasks() (uint32, error)

	// Endpoint returns the address the client talks to.
	Endpoint() common.Endpoint
}
