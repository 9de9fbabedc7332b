//go:build unix

package terminal

func openNative(cfg Config, o *options) (Console, error) {
	c, err := openPOSIX(cfg, o)
	if err != nil {
		return nil, err
	}
	return c, nil
}
