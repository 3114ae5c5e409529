// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/pkg/errors"
)

// A Component updates the state of a part's outputs in a circuit.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query
// the socket for assigned pin numbers and return closures around
// these pin numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &hwsim.PartSpec{
//		Name:    "Not",
//		Inputs:  []string{"in"},
//		Outputs: []string{"out"},
//		Mount: func(s *hwsim.Socket) []hwsim.Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []hwsim.Component{
//				func(c *hwsim.Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Use ExpandBus to expand bus declarations like
	// "in[16]" to individual pin names.
	Inputs []string
	// Output pin names.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart wraps p with the given connections into a Part.
// It panics if the wire map is malformed (bad bus range or size mismatch).
//
func (p *PartSpec) NewPart(w W) Part {
	ex, err := w.expand()
	if err != nil {
		panic(errors.Wrap(err, p.Name))
	}
	return Part{p, ex}
}

// A NewPartFn is a function that takes a set of wires and returns a new
// Part.
//
type NewPartFn func(w W) Part

// A Part wraps a part specification together with its connections within a
// host chip.
//
type Part struct {
	*PartSpec
	// wires maps the part's pin names to wire names in the host chip.
	wires map[string]string
}

func (p *PartSpec) isInput(name string) bool {
	for _, in := range p.Inputs {
		if in == name {
			return true
		}
	}
	return false
}

func (p *PartSpec) isOutput(name string) bool {
	for _, out := range p.Outputs {
		if out == name {
			return true
		}
	}
	return false
}

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	cs    []Component
	count int  // wire count
	tpc   uint // ticks per clock cycle
	tick  uint
}

// NewCircuit builds a new circuit based on the given parts.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle. It
// is rounded up to the next power of two, with a minimum of 2.
//
func NewCircuit(stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle++

	// new circuit with room for constant value pins.
	cc := &Circuit{count: cstCount, tpc: stepsPerCycle}
	wrap, err := Chip("CIRCUIT", nil, nil, parts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	cc.cs = wrap(nil).Mount(newSocket(cc))
	cc.s0 = make([]bool, cc.count)
	cc.s1 = make([]bool, cc.count)
	cc.s0[cstTrue] = true
	cc.s1[cstTrue] = true

	return cc, nil
}

// allocPin allocates a pin and returns its number.
//
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.tick
}

// SPC returns the stepsPerCycle value.
//
func (c *Circuit) SPC() uint {
	return c.tpc
}

// AtTick returns true if the current step is the first step of a clock cycle
// (raising edge of the clock).
//
func (c *Circuit) AtTick() bool {
	return c.tick&(c.tpc-1) == 0
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n for the next step.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	for _, f := range c.cs {
		f(c)
	}
	c.tick++
	c.s0, c.s1 = c.s1, c.s0
}

// TickTock runs the simulation until the beginning of the next clock cycle.
// Values sampled by clocked parts during the cycle are the ones that were
// stable at the end of the previous cycle.
//
func (c *Circuit) TickTock() {
	c.Step()
	for !c.AtTick() {
		c.Step()
	}
}
