package main

import (
	"github.com/goccy/go-yaml"
	"os"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, v)
	Check(err)
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		Check(file.Close())
		return true
	} else {
		return false
	}
}

type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
