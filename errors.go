package isogrid

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrBadConfig is wrapped by every configuration error returned by this package.
var ErrBadConfig = errors.New("bad configuration")

// ErrMsg returns a configuration error with a message, function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s: %w", msg, ErrBadConfig)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s: %w", fn.Name(), line, msg, ErrBadConfig)
}
