//go:build matrixportal_m4

package main

import (
	"machine"
	"time"
)

func main() {
	time.Sleep(time.Second)
	run(board{
		i2c:       machine.I2C0,
		scl:       machine.I2C0_SCL_PIN,
		sda:       machine.I2C0_SDA_PIN,
		voltmeter: machine.A1,
	})
}
