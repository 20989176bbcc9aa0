package main

import (
	"log/slog"
)

// UploadPlaythroughs runs on its own goroutine, so that the frame loop never
// waits for the network. A playthrough with an empty history registers its
// id, any other playthrough is uploaded in full. done is closed after
// requests is closed and every pending upload was attempted.
func UploadPlaythroughs(user string, requests <-chan *Playthrough, done chan<- struct{}) {
	defer close(done)
	for p := range requests {
		var err error
		if len(p.History) == 0 {
			err = InitializeIdInDbHttp(user, p.ReleaseVersion,
				p.SimulationVersion, p.InputVersion, p.Id)
		} else {
			err = UploadDataToDbHttp(user, p.ReleaseVersion,
				p.SimulationVersion, p.InputVersion, p.Id, p.Serialize())
		}
		if err != nil {
			slog.Error("failed to upload playthrough", "id", p.Id, "error", err)
		}
	}
}
