//go:build !unix && !windows

package terminal

import "fmt"

func openNative(cfg Config, o *options) (Console, error) {
	return nil, fmt.Errorf("native backend: %w", ErrUnsupportedPlatform)
}
