// Package volt converts analog readings taken across a resistor divider back into the voltage at the divider's input.
package volt

// Divider describes an ADC channel measuring the low side of a two-resistor divider.
type Divider struct {
	Reference  float32 // full-scale voltage of the converter
	Resolution float32 // counts per full scale, e.g. 1024 for a 10-bit converter
	R1         float32 // high side, ohms
	R2         float32 // low side, ohms
}

// Default is the common 0-25V voltage sensor module read by a 10-bit, 5V converter.
var Default = Divider{
	Reference:  5.0,
	Resolution: 1024,
	R1:         7510,
	R2:         30000,
}

// Volts returns the divider input voltage for the given reading.
func (d Divider) Volts(reading uint16) float32 {
	return float32(reading) * (d.Reference / d.Resolution) * ((d.R1 + d.R2) / d.R2)
}
