// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/tilecrc"
	"github.com/db47h/tilecrc/hwsim"
	"github.com/pkg/errors"
)

// longest combinational path in a CRC16Serial chip is 4 gates (XOR, XOR,
// MUX, MUX), plus one step for inputs to propagate.
const crcStepsPerCycle = 8

// CRC16Serial returns a 16 bits serial CRC register for the given generator
// polynomial (an LFSR in Galois configuration, shifting left).
//
//	Inputs: din, en, load, init[16]
//	Outputs: crc[16]
//	Function: if load=1 then crc(t) = init(t-1)
//	          else if en=1 then
//	              fb = crc[15](t-1) ^ din(t-1)
//	              crc(t) = (crc(t-1) << 1) ^ (fb ? poly : 0)
//	          else crc(t) = crc(t-1)
//
// Feeding the bits of a byte sequence MSB first with en=1 into a register
// loaded with init yields the same value as tilecrc.CRC16 does for
// poly=tilecrc.Poly.
//
func CRC16Serial(poly uint16) (hwsim.NewPartFn, error) {
	name := func(n string, i int) string { return hwsim.BusPinName(n, i) }
	parts := []hwsim.Part{
		Xor(hwsim.W{pA: "crc[15]", pB: "din", pOut: "fb"}),
	}
	for i := 0; i < 16; i++ {
		var src string
		switch {
		case i == 0 && poly&1 != 0:
			src = "fb"
		case i == 0:
			src = hwsim.False
		case poly&(1<<uint(i)) != 0:
			src = name("tap", i)
			parts = append(parts, Xor(hwsim.W{pA: name("crc", i-1), pB: "fb", pOut: src}))
		default:
			src = name("crc", i-1)
		}
		parts = append(parts,
			Mux(hwsim.W{pA: name("crc", i), pB: src, pSel: "en", pOut: name("shift", i)}),
			Mux(hwsim.W{pA: name("shift", i), pB: name("init", i), pSel: "load", pOut: name("next", i)}),
			DFF(hwsim.W{pIn: name("next", i), pOut: name("crc", i)}),
		)
	}
	p, err := hwsim.Chip("CRC16_"+strconv.FormatUint(uint64(poly), 16),
		[]string{"din", "en", "load", "init[16]"},
		[]string{"crc[16]"},
		parts...)
	if err != nil {
		return nil, errors.Wrap(err, "build CRC16 register")
	}
	return p, nil
}

// A CRCRegister drives a simulated CRC16Serial register. It implements
// io.Writer: bytes written to it are shifted into the register MSB first, one
// bit per clock cycle.
//
type CRCRegister struct {
	c         *hwsim.Circuit
	din, en   bool
	load      bool
	init, out int64
}

// NewCRCRegister returns a new CRC register simulation for the given
// polynomial, loaded with init.
//
func NewCRCRegister(poly uint16, init uint16) (*CRCRegister, error) {
	crc, err := CRC16Serial(poly)
	if err != nil {
		return nil, err
	}
	r := new(CRCRegister)
	r.c, err = hwsim.NewCircuit(crcStepsPerCycle,
		Input(func() bool { return r.din })(hwsim.W{pOut: "din"}),
		Input(func() bool { return r.en })(hwsim.W{pOut: "en"}),
		Input(func() bool { return r.load })(hwsim.W{pOut: "load"}),
		InputN(16, func() int64 { return r.init })(hwsim.W{"out[0..15]": "init[0..15]"}),
		crc(hwsim.W{
			"din":         "din",
			"en":          "en",
			"load":        "load",
			"init[0..15]": "init[0..15]",
			"crc[0..15]":  "crc[0..15]",
		}),
		OutputN(16, func(v int64) { r.out = v })(hwsim.W{"in[0..15]": "crc[0..15]"}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build CRC16 circuit")
	}
	r.Reset(init)
	return r, nil
}

// Reset loads the register with init.
//
func (r *CRCRegister) Reset(init uint16) {
	r.init = int64(init)
	r.load, r.en = true, false
	r.c.TickTock()
}

// Write shifts the bits of p into the register, MSB first. It never returns an
// error.
//
func (r *CRCRegister) Write(p []byte) (int, error) {
	r.load, r.en = false, true
	for _, b := range p {
		for bit := 7; bit >= 0; bit-- {
			r.din = b&(1<<uint(bit)) != 0
			r.c.TickTock()
		}
	}
	return len(p), nil
}

// Sum16 returns the current register value. It runs one more clock cycle with
// the register on hold in order to latch the last bit written.
//
func (r *CRCRegister) Sum16() uint16 {
	r.load, r.en = false, false
	r.c.TickTock()
	return uint16(r.out)
}

// Cycles returns the number of clock cycles run so far.
//
func (r *CRCRegister) Cycles() uint {
	return r.c.Steps() / r.c.SPC()
}

// SerialCRC16 computes the CRC-16-CCITT of data with the given initial value on
// a simulated CRC16Serial register.
//
func SerialCRC16(data []byte, init uint16) (uint16, error) {
	r, err := NewCRCRegister(tilecrc.Poly, init)
	if err != nil {
		return 0, err
	}
	r.Write(data)
	return r.Sum16(), nil
}
