package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"raycaster/internal/logging"
)

// startDefaultPGORecording begins writing a CPU profile to path. The
// returned stop function may be called more than once.
func startDefaultPGORecording(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	logging.For("pgo").WithField("file", path).Info("recording CPU profile")
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				logging.For("pgo").WithError(err).Warn("closing profile")
			}
		})
	}
	return stop, nil
}
