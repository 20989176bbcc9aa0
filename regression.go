package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes()
// they are considered "the same", even though they may be implemented
// differently.
// The World is "the same" if it has:
// - the paddles at the same positions
// - the ball at the same position, moving with the same velocity
// - the same score
// - the same match state
// The random generator is not included. If it diverged, the ball would
// eventually restart in a different direction and the difference would show
// up in the ball's velocity.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.Player.Bounds)
	Serialize(buf, w.Opponent.Bounds)
	Serialize(buf, w.Ball.Bounds)
	Serialize(buf, w.Ball.Velocity)
	Serialize(buf, w.Score)
	Serialize(buf, w.State)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough. It uses the exact same
// seed and player inputs, but the new World implementation.
// - If the RegressionId hasn't changed, the refactoring of World did not
// alter the playthrough.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
