//go:build !windows

package cli

// Args returns a copy of the raw vector. Outside Windows the runtime
// arguments are trusted to be UTF-8 already.
func (p ProcessArgs) Args() ([]string, error) {
	args := make([]string, len(p))
	copy(args, p)

	return args, nil
}
