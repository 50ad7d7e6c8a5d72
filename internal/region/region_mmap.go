//go:build linux || darwin || freebsd || netbsd || openbsd

package region

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Anonymous maps n zeroed bytes with MAP_ANON|MAP_PRIVATE.
func Anonymous(n int) (*Region, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", n, err)
	}
	release := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Already unmapped.
			return nil
		}
		return err
	}
	return &Region{data: data, kind: KindAnonymous, release: release}, nil
}
