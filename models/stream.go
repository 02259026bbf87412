package models

import "time"

// Stream is a live stream record exposed by the stream-info endpoints.
type Stream struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StreamerID  string    `json:"streamerId"`
	Status      string    `json:"status"`
	Viewers     int       `json:"viewers"`
	PlaybackURL string    `json:"playbackUrl,omitempty"`
	StartedAt   time.Time `json:"startedAt,omitzero"`
}

// StreamInput is the body of a create-stream request.
type StreamInput struct {
	Title       string `json:"title"`
	StreamerID  string `json:"streamerId"`
	Status      string `json:"status,omitempty"`
	PlaybackURL string `json:"playbackUrl,omitempty"`
}

// StreamPatch is the body of a partial stream update.
type StreamPatch struct {
	Title       *string `json:"title,omitempty"`
	Status      *string `json:"status,omitempty"`
	PlaybackURL *string `json:"playbackUrl,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p StreamPatch) Empty() bool {
	return p.Title == nil && p.Status == nil && p.PlaybackURL == nil
}

// Stream lifecycle states.
const (
	StreamScheduled = "scheduled"
	StreamLive      = "live"
	StreamEnded     = "ended"
)

// StreamStatuses lists the accepted stream states in lifecycle order.
func StreamStatuses() []string {
	return []string{StreamScheduled, StreamLive, StreamEnded}
}
