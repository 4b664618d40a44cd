package watcher

import (
	"os"
	"path/filepath"

	"github.com/enb/bemfront/internal/tlogger"
	"github.com/fsnotify/fsnotify"
)

// StartWatcher watches the given folders recursively and emits the path
// of every changed file. Newly created directories are picked up.
func StartWatcher(folders ...string) <-chan string {
	wch, err := fsnotify.NewWatcher()
	if err != nil {
		tlogger.Fatal("msg", "Could not start file watcher", "err", err)
	}

	outCh := make(chan string, 100)

	go func() {
		for {
			select {
			case event, ok := <-wch.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					if event.Op&fsnotify.Create != 0 {
						if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
							wch.Add(event.Name)
						}
					}
					tlogger.Info("msg", "Detected change", "path", event.Name)
					outCh <- event.Name
				}
			case err, ok := <-wch.Errors:
				if !ok {
					return
				}
				tlogger.Warn("msg", "Watcher error", "err", err)
			}
		}
	}()

	for _, folder := range folders {
		filepath.Walk(folder, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if fi.IsDir() {
				return wch.Add(path)
			}
			return nil
		})
	}

	return outCh
}
