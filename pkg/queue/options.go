package queue

import (
	"crypto/tls"
	"time"
)

const (
	defaultKeyPrefix    = "stacks"
	defaultPollInterval = 50 * time.Millisecond
)

// Options are options for the queue.
type Options struct {
	// URL encodes how we'll connect to the queue.
	URL string

	// TLSConfig needed to connect to the queue (optional).
	TLSConfig *tls.Config

	// KeyPrefix namespaces the queue's redis keys. Defaults to "stacks".
	KeyPrefix string

	// PollInterval is how long a blocked Dequeue waits between checks of
	// an empty queue. Defaults to 50ms.
	PollInterval time.Duration
}

func (o *Options) SetDefaults() {
	if o.KeyPrefix == "" {
		o.KeyPrefix = defaultKeyPrefix
	}
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
}
