package fix

// Exponents of the SI prefixes, for radix 10 descriptors.
const (
	Yocto = -24
	Zepto = -21
	Atto  = -18
	Femto = -15
	Pico  = -12
	Nano  = -9
	Micro = -6
	Milli = -3
	Centi = -2
	Deci  = -1
	Unit  = 0
	Deca  = 1
	Hecto = 2
	Kilo  = 3
	Mega  = 6
	Giga  = 9
	Tera  = 12
	Peta  = 15
	Exa   = 18
	Zetta = 21
	Yotta = 24
)

// Exponents of the IEC binary prefixes, for radix 2 descriptors.
const (
	Kibi = 10
	Mebi = 20
	Gibi = 30
	Tebi = 40
	Pebi = 50
	Exbi = 60
	Zebi = 70
	Yobi = 80
)

// Bin returns a radix 2 descriptor.
func Bin(digits, exponent int, signed bool) (Descriptor, error) {
	return NewDescriptor(2, digits, exponent, signed)
}

// Dec returns a radix 10 descriptor, e.g. Dec(6, Milli, true) for signed
// values with six decimal digits counted in thousandths.
func Dec(digits, exponent int, signed bool) (Descriptor, error) {
	return NewDescriptor(10, digits, exponent, signed)
}
