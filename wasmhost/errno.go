package wasmhost

import "github.com/wippyai/fuzz-bridge/hosterr"

// Errno values returned to guests. 0 is success; failures map one-to-one
// onto hosterr categories, offset by one so that CategoryUnknown does not
// collide with success.
const (
	ErrnoOK uint32 = 0
)

// ErrnoOf converts an error category to its guest-visible errno.
func ErrnoOf(cat hosterr.Category) uint32 {
	return uint32(cat) + 1
}
