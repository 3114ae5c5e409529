// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// W is a set of wires, connecting a part's I/O pins (the map key) to pins in
// its container. Both keys and values may be bus ranges like "in[0..15]":
//
//	W{"in[0..3]": "data[4..7]", "sel": "load"}
//
type W map[string]string

// expand returns the one to one pin mapping described by w.
//
func (w W) expand() (map[string]string, error) {
	r := make(map[string]string, len(w))
	for k, v := range w {
		if k == "" || v == "" {
			return nil, errors.New("invalid pin mapping " + k + ":" + v)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand key "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand value "+v)
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				r[ks[i]] = vs[i]
			}
		case len(vs) == 1:
			// many to one
			for _, k := range ks {
				r[k] = vs[0]
			}
		default:
			return nil, errors.New("pin count mismatch in pin mapping: " + k + ":" + v)
		}
	}
	return r, nil
}

// BusPinName returns the pin name for the n-th bit of the named bus.
//
func BusPinName(bus string, n int) string {
	return bus + "[" + strconv.Itoa(n) + "]"
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, err
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}

// ExpandBus expands bus declarations in a pin list:
//
//	ExpandBus("a", "in[2]") // []string{"a", "in[0]", "in[1]"}
//
// It panics on a malformed bus size.
//
func ExpandBus(pins ...string) []string {
	out := make([]string, 0, len(pins))
	for _, n := range pins {
		i := strings.IndexRune(n, '[')
		if i < 0 {
			out = append(out, n)
			continue
		}
		size, err := strconv.Atoi(strings.TrimSuffix(n[i+1:], "]"))
		if err != nil || !strings.HasSuffix(n, "]") {
			panic(errors.Errorf("invalid bus declaration %q", n))
		}
		for j := 0; j < size; j++ {
			out = append(out, BusPinName(n[:i], j))
		}
	}
	return out
}
