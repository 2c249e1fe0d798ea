// Package media is the reference collaborator set behind the engine: it
// reads zip family archives on disk and keeps the entity store in step
// with them.
package media

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/pkg/database"
)

// Service implements every collaborator capability the dispatcher calls.
type Service struct {
	db   database.Database
	opts *Options
	log  zerolog.Logger
}

// New returns a Service over the given store.
func New(db database.Database, opts *Options, log zerolog.Logger) *Service {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()
	return &Service{db: db, opts: opts, log: log}
}

// parseNumber pulls the last run of digits out of a name, eg.
// "Alpha v02 013" -> 13. 0 if the name carries no number.
func parseNumber(name string) int {
	start, end := -1, -1
	for i := len(name) - 1; i >= 0; i-- {
		digit := name[i] >= '0' && name[i] <= '9'
		if digit && end == -1 {
			end = i + 1
		}
		if !digit && end != -1 {
			start = i + 1
			break
		}
	}
	if end == -1 {
		return 0
	}
	if start == -1 {
		start = 0
	}
	n := 0
	for _, c := range name[start:end] {
		n = n*10 + int(c-'0')
	}
	return n
}

// stripExtension returns a file name without its extension.
func stripExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
