package chaos

// Batch kernels for the integer maps. Each kernel advances all lanes of
// its fixed-width state in place. The loops are elementwise over
// independent lanes with no cross-lane dependence, which lets the
// compiler vectorize them on targets where the matching SIMD width is
// available; the simd package decides which width a caller should use.

// 8-lane kernels (256-bit tier).

func TentStep8(v *[8]uint32) {
	for i := range v {
		v[i] = TentStep(v[i])
	}
}

func LogisticStep8(v *[8]uint32) {
	for i := range v {
		v[i] = LogisticStep(v[i])
	}
}

func SineStep8(v *[8]uint32) {
	for i := range v {
		v[i] = SineStep(v[i])
	}
}

func HenonStep8(x, y *[8]uint32) {
	for i := range x {
		x[i], y[i] = HenonStep(x[i], y[i])
	}
}

func LorenzStep8(x, y, z *[8]uint32) {
	for i := range x {
		x[i], y[i], z[i] = LorenzStep(x[i], y[i], z[i])
	}
}

func ChenStep8(x, y, z *[8]uint32) {
	for i := range x {
		x[i], y[i], z[i] = ChenStep(x[i], y[i], z[i])
	}
}

// 16-lane kernels (512-bit tier).

func TentStep16(v *[16]uint32) {
	for i := range v {
		v[i] = TentStep(v[i])
	}
}

func LogisticStep16(v *[16]uint32) {
	for i := range v {
		v[i] = LogisticStep(v[i])
	}
}

func SineStep16(v *[16]uint32) {
	for i := range v {
		v[i] = SineStep(v[i])
	}
}

func HenonStep16(x, y *[16]uint32) {
	for i := range x {
		x[i], y[i] = HenonStep(x[i], y[i])
	}
}

func LorenzStep16(x, y, z *[16]uint32) {
	for i := range x {
		x[i], y[i], z[i] = LorenzStep(x[i], y[i], z[i])
	}
}

func ChenStep16(x, y, z *[16]uint32) {
	for i := range x {
		x[i], y[i], z[i] = ChenStep(x[i], y[i], z[i])
	}
}
