//go:build nano_rp2040

package main

import "machine"

func main() {
	run(board{
		i2c:       machine.I2C0,
		scl:       machine.I2C0_SCL_PIN,
		sda:       machine.I2C0_SDA_PIN,
		voltmeter: machine.A0,
	})
}
