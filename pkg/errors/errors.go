package errors

import (
	"fmt"
)

var (
	ErrNoLibraryRoot = fmt.Errorf("no library root specified")
	ErrNoTaskType    = fmt.Errorf("no task type specified")
	ErrInvalidArg    = fmt.Errorf("invalid arg")
	ErrInvalidState  = fmt.Errorf("invalid state")
	ErrNotSupported  = fmt.Errorf("not supported")
	ErrQueueClosed   = fmt.Errorf("queue closed")
	ErrMediaDamaged  = fmt.Errorf("media damaged")
)
