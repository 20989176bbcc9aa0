package main

import (
	"bytes"
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"slices"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion
// and SimulationVersion as the ones in the executable.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a match. Given
// this input and a compatible simulation, the same match plays out again.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Dimensions
	Scenario
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

func NewPlaythrough(seed int64, d Dimensions, s Scenario) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Dimensions = d
	p.Scenario = s
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	scenario, err := yaml.Marshal(p.Scenario)
	Check(err)

	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Dimensions)
	SerializeBytes(buf, scenario)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
		return
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	Deserialize(buf, &p.Dimensions)
	Check(yaml.Unmarshal(DeserializeBytes(buf), &p.Scenario))
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	DeserializeSlice(buf, &p.History)
	return
}
