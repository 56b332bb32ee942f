//go:build linux

package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FileWatcher re-runs onChange for every write to a watched file, with a
// short debounce so editors that write in bursts trigger once.
type FileWatcher struct {
	fd          int
	watchMap    map[int]string
	mu          sync.Mutex
	debounceMap map[string]*time.Timer
	onChange    func(string)
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %v", err)
	}

	return &FileWatcher{
		fd:          fd,
		watchMap:    make(map[int]string),
		debounceMap: make(map[string]*time.Timer),
		onChange:    onChange,
	}, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	wd, err := unix.InotifyAddWatch(fw.fd, absPath, unix.IN_MODIFY|unix.IN_CLOSE_WRITE)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %v", absPath, err)
	}

	fw.mu.Lock()
	fw.watchMap[wd] = absPath
	fw.mu.Unlock()

	return nil
}

// Watch blocks, draining inotify events and firing the debounced
// callback for each modified file.
func (fw *FileWatcher) Watch() {
	buf := make([]byte, unix.SizeofInotifyEvent*10)

	for {
		n, err := unix.Read(fw.fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return
		}

		offset := 0
		for offset+unix.SizeofInotifyEvent <= n {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			fw.mu.Lock()
			path, ok := fw.watchMap[int(event.Wd)]
			fw.mu.Unlock()
			if ok {
				fw.debounce(path)
			}
			offset += unix.SizeofInotifyEvent + int(event.Len)
		}
	}
}

func (fw *FileWatcher) debounce(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if timer, ok := fw.debounceMap[path]; ok {
		timer.Stop()
	}
	fw.debounceMap[path] = time.AfterFunc(100*time.Millisecond, func() {
		fw.onChange(path)
	})
}

func (fw *FileWatcher) Close() error {
	return unix.Close(fw.fd)
}
