// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec
	parts []Part
}

func (c *chip) mount(s *Socket) []Component {
	var cs []Component
	for _, p := range c.parts {
		cs = append(cs, s.Mount(p)...)
	}
	return cs
}

// Chip composes existing parts into a new part packaged into a chip.
// The pin names specified as inputs and outputs will be the inputs
// and outputs of the chip. Bus declarations like "in[16]" are expanded.
//
// An Xor gate could be created like this:
//
//	xor, err := hwsim.Chip("XOR", []string{"a", "b"}, []string{"out"},
//		hwlib.Nand(hwsim.W{"a": "a", "b": "b", "out": "nandAB"}),
//		hwlib.Nand(hwsim.W{"a": "a", "b": "nandAB", "out": "w0"}),
//		hwlib.Nand(hwsim.W{"a": "b", "b": "nandAB", "out": "w1"}),
//		hwlib.Nand(hwsim.W{"a": "w0", "b": "w1", "out": "out"}),
//	)
//
// The returned NewPartFn can be used to compose the new part with others
// into other chips.
//
func Chip(name string, inputs []string, outputs []string, parts ...Part) (NewPartFn, error) {
	inputs = ExpandBus(inputs...)
	outputs = ExpandBus(outputs...)

	if err := checkWiring(inputs, outputs, parts); err != nil {
		return nil, errors.Wrap(err, name)
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  inputs,
			Outputs: outputs,
		},
		parts,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}

func checkWiring(inputs []string, outputs []string, parts []Part) error {
	// driven wires, mapped to the name of the pin driving them.
	drv := make(map[string]string, len(inputs)+len(parts))
	for _, in := range inputs {
		drv[in] = in
	}

	for _, p := range parts {
		for k, v := range p.wires {
			if !p.isInput(k) && !p.isOutput(k) {
				return errors.New("invalid pin name " + k + " for part " + p.Name)
			}
			if !p.isOutput(k) {
				continue
			}
			pn := p.Name + "." + k
			switch {
			case v == True || v == False:
				return errors.Errorf("%s:%s: output pin connected to constant %s input", pn, v, v)
			case drv[v] == v:
				return errors.Errorf("%s:%s: chip input pin used as output", pn, v)
			case drv[v] != "":
				return errors.Errorf("%s:%s: output pin already used as output by %s", pn, v, drv[v])
			}
			drv[v] = pn
		}
	}

	for _, p := range parts {
		for _, k := range p.Inputs {
			v, ok := p.wires[k]
			if !ok || v == True || v == False {
				continue
			}
			if drv[v] == "" {
				return errors.Errorf("pin %s not connected to any output", v)
			}
		}
	}
	for _, out := range outputs {
		if drv[out] == "" {
			return errors.Errorf("chip output %s not connected", out)
		}
	}
	return nil
}
