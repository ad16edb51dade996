//go:build !unix

package ioutil

// IsInterrupt always reports false on platforms without EINTR.
func IsInterrupt(err error) bool {
	return false
}
