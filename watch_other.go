//go:build !linux

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/xyproto/env/v2"
)

// FileWatcher is the portable fallback: it polls modification times.
// CTREE_WATCH_INTERVAL overrides the interval (milliseconds).
type FileWatcher struct {
	paths    []string
	modTimes map[string]time.Time
	interval time.Duration
	onChange func(string)
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	return &FileWatcher{
		modTimes: make(map[string]time.Time),
		interval: time.Duration(env.Int("CTREE_WATCH_INTERVAL", 500)) * time.Millisecond,
		onChange: onChange,
	}, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}
	fw.paths = append(fw.paths, absPath)
	fw.modTimes[absPath] = info.ModTime()
	return nil
}

// Watch blocks, polling every interval and firing the callback when a
// file's modification time moves.
func (fw *FileWatcher) Watch() {
	for {
		time.Sleep(fw.interval)
		for _, path := range fw.paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().After(fw.modTimes[path]) {
				fw.modTimes[path] = info.ModTime()
				fw.onChange(path)
			}
		}
	}
}

func (fw *FileWatcher) Close() error {
	return nil
}
