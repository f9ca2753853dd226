package filters

import "fmt"

// Resize returns a filter that scales video to width x height. Pass -1 for
// one dimension to preserve the aspect ratio.
func Resize(width, height int) Filter {
	return Func(func(*Context) []string {
		if width == 0 || height == 0 {
			return nil
		}
		return []string{"-vf", fmt.Sprintf("scale=%d:%d", width, height)}
	})
}

// Framerate returns a filter that forces the output frame rate.
func Framerate(fps int) Filter {
	return Func(func(*Context) []string {
		if fps <= 0 {
			return nil
		}
		return []string{"-r", fmt.Sprintf("%d", fps)}
	})
}

// Custom returns a filter that passes the given tokens through unchanged.
// Useful for flags the typed surface does not cover.
func Custom(tokens ...string) Filter {
	return Func(func(*Context) []string {
		return append([]string(nil), tokens...)
	})
}

// Metadata returns a filter that sets an output metadata key
// (e.g. title, artist).
func Metadata(key, value string) Filter {
	return Func(func(*Context) []string {
		if key == "" {
			return nil
		}
		return []string{"-metadata", fmt.Sprintf("%s=%s", key, value)}
	})
}
