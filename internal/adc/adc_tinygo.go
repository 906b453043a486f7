//go:build tinygo

package adc

import "machine"

// Configure sets up the converter on pin and returns a Sampler reading it at the given resolution.
func Configure(pin machine.Pin, bits uint8) *Sampler {
	machine.InitADC()
	a := &machine.ADC{Pin: pin}
	a.Configure(machine.ADCConfig{
		Resolution: uint32(bits),
		Samples:    4,
	})
	return New(a, bits)
}
