package sounding_test

import (
	"fmt"

	sounding "github.com/Jmedinap04/Soundings"
)

func ExampleResampleByHeight() {
	profile := &sounding.Profile{
		Z:  []float64{0, 1000, 2000},
		T:  []float64{15, 8, 1},
		P:  []float64{1013, 900, 800},
		Td: []float64{10, 5, 0},
	}

	out, err := sounding.ResampleByHeight(profile, 500)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := range out.Z {
		fmt.Printf("z=%4.0f m  T=%5.1f °C  p=%6.1f hPa  Td=%4.1f °C\n",
			out.Z[i], out.T[i], out.P[i], out.Td[i])
	}
	// Output:
	// z=   0 m  T= 15.0 °C  p=1013.0 hPa  Td=10.0 °C
	// z= 500 m  T= 11.5 °C  p= 956.5 hPa  Td= 7.5 °C
	// z=1000 m  T=  8.0 °C  p= 900.0 hPa  Td= 5.0 °C
	// z=1500 m  T=  4.5 °C  p= 850.0 hPa  Td= 2.5 °C
	// z=2000 m  T=  1.0 °C  p= 800.0 hPa  Td= 0.0 °C
}

func ExampleResample() {
	profile := &sounding.Profile{
		Z:  []float64{0, 1000, 2000},
		T:  []float64{20, 10, 0},
		P:  []float64{1000, 900, 800},
		Td: []float64{5, 0, -5},
	}

	// Method names are case-insensitive; the Spanish spellings work too.
	out, err := sounding.Resample(profile, "PRESION", 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := range out.P {
		fmt.Printf("p=%5.0f hPa  T=%5.1f °C  z=%4.0f m\n", out.P[i], out.T[i], out.Z[i])
	}
	// Output:
	// p= 1000 hPa  T= 20.0 °C  z=   0 m
	// p=  900 hPa  T= 10.0 °C  z=1000 m
	// p=  800 hPa  T=  0.0 °C  z=2000 m
}
