//go:build windows

package terminal

func openNative(cfg Config, o *options) (Console, error) {
	c, err := openWindows(cfg, o)
	if err != nil {
		return nil, err
	}
	return c, nil
}
