//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package region

// Anonymous falls back to heap storage when anonymous mappings are not available.
func Anonymous(n int) (*Region, error) {
	return Heap(n)
}
