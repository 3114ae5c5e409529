/*
Package hwsim is a small gate level hardware simulator, using Go as a hardware
description language.

Parts are described by a PartSpec: a name, input and output pin names, and a
Mount function that returns the closures (Components) updating the part's
outputs from its inputs. Parts are wired together by name into chips, and chips
into a Circuit.

The simulation keeps two frames of wire states: on every step, all components
read their inputs from the current frame and write their outputs to the next
one. A combinational path of n gates therefore takes n steps to settle. Clocked
parts sample their inputs on the first step of each clock cycle (see AtTick),
so the steps per cycle given to NewCircuit must be larger than the longest
combinational path between two clocked parts.
*/
package hwsim
