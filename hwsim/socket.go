// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

// Constant input pin names.
//
const (
	True  = "true"
	False = "false"
)

const (
	cstFalse = iota
	cstTrue
	cstCount
)

// A Socket maps a part's pin names to pin numbers in a circuit.
//
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue},
		c: c,
	}
}

// Mount mounts the given sub-part and allocates new internal pins as
// necessary. Unconnected inputs are wired to False. Unconnected outputs get a
// pin of their own that nothing reads.
//
func (s *Socket) Mount(p Part) []Component {
	sub := newSocket(s.c)
	for _, k := range p.Inputs {
		if v, ok := p.wires[k]; ok {
			sub.m[k] = s.PinOrNew(v)
		} else {
			sub.m[k] = cstFalse
		}
	}
	for _, k := range p.Outputs {
		if v, ok := p.wires[k]; ok {
			sub.m[k] = s.PinOrNew(v)
		} else {
			sub.m[k] = s.c.allocPin()
		}
	}
	return p.Mount(sub)
}

// Pin returns the pin number allocated to the given pin name.
// This function panics if the pin does not exist.
//
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the pin number allocated to the given pin name.
// If no such pin exists a new one is allocated.
//
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.allocPin()
		s.m[name] = n
	}
	return n
}

// Bus returns the pin numbers allocated to the given bus name. Pin 0 is
// the least significant bit.
//
func (s *Socket) Bus(name string, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}
