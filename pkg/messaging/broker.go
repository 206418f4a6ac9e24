package messaging

import "context"

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Channel names for directory change notifications.
const (
	ChannelTournamentEvents = "pickleball.tournaments"
	ChannelClubEvents       = "pickleball.clubs"
	ChannelCourtEvents      = "pickleball.courts"
)
