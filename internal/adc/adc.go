// Package adc reads an analog input at a fixed converter resolution.
package adc

// Source is a raw converter channel. Readings are left-justified to 16 bits, as machine.ADC returns them.
type Source interface {
	Get() uint16
}

type Sampler struct {
	src  Source
	bits uint8
}

// New returns a Sampler that scales src down to the given number of bits. Out-of-range widths fall back to 10 bits.
func New(src Source, bits uint8) *Sampler {
	if bits == 0 || bits > 16 {
		bits = 10
	}
	return &Sampler{src: src, bits: bits}
}

// Read takes one sample. There is no averaging or filtering.
func (s *Sampler) Read() uint16 {
	return s.src.Get() >> (16 - s.bits)
}

// Max is the largest value Read can return.
func (s *Sampler) Max() uint16 {
	return uint16(1<<s.bits - 1)
}

func (s *Sampler) Bits() uint8 {
	return s.bits
}
