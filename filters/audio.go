package filters

import "fmt"

// Resample returns a filter that resamples audio to the given rate in Hz.
func Resample(rate int) Filter {
	return Func(func(*Context) []string {
		if rate <= 0 {
			return nil
		}
		return []string{"-ar", fmt.Sprintf("%d", rate)}
	})
}

// Downmix returns a filter that forces the given channel count
// (1 for mono, 2 for stereo).
func Downmix(channels int) Filter {
	return Func(func(*Context) []string {
		if channels <= 0 {
			return nil
		}
		return []string{"-ac", fmt.Sprintf("%d", channels)}
	})
}

// Volume returns a filter that scales audio volume by the given multiplier
// (1.0 is unchanged).
func Volume(multiplier float64) Filter {
	return Func(func(*Context) []string {
		if multiplier <= 0 {
			return nil
		}
		return []string{"-af", fmt.Sprintf("volume=%g", multiplier)}
	})
}
