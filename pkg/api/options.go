package api

import (
	"github.com/hollowbeak/stacks/internal/core"
	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/media"
	"github.com/hollowbeak/stacks/pkg/queue"
)

// Options passed to the stacks API on creation.
type Options struct {
	// Database configures the entity store. An empty URL runs in-memory.
	Database database.Options

	// Queue configures the task transport. An empty URL runs in-memory.
	Queue queue.Options

	// Media configures the archive handling collaborators.
	Media media.Options

	// Engine configures the consumer pool and scheduled scans.
	Engine core.Options
}

// OptionsInMemoryDefault runs everything in-process: a memory store and a
// memory queue. Intended for single-binary deployments and tests.
func OptionsInMemoryDefault() *Options {
	return &Options{}
}

// OptionsServerDefault connects to an external postgres and redis, for
// deployments where api servers and workers are separate processes.
func OptionsServerDefault(databaseURL, queueURL string) *Options {
	return &Options{
		Database: database.Options{URL: databaseURL},
		Queue:    queue.Options{URL: queueURL},
	}
}
