package chaos

// Batch kernels for the float maps, 4 lanes (256-bit tier) and 8 lanes
// (512-bit tier). Lanes are independent trajectories. The tent kernel
// computes both branches and selects, mirroring a masked vector select;
// the sine kernel uses the Bhaskara I rational approximation instead of
// math.Sin and intentionally diverges from the scalar path.

// 4-lane kernels.

func LogisticMapStep4(v *[4]float64, r float64) {
	for i := range v {
		v[i] = r * v[i] * (1 - v[i])
	}
}

func TentMapStep4(v *[4]float64, mu float64) {
	for i := range v {
		lo := mu * v[i]
		hi := mu * (1 - v[i])
		if v[i] < 0.5 {
			v[i] = lo
		} else {
			v[i] = hi
		}
	}
}

func SineMapStep4(v *[4]float64, r float64) {
	for i := range v {
		v[i] = r * sineApprox(v[i])
	}
}

func HenonMapStep4(x, y *[4]float64, a, b float64) {
	for i := range x {
		x[i], y[i] = HenonMapStep(x[i], y[i], a, b)
	}
}

func LorenzMapStep4(x, y, z *[4]float64, p LorenzParams) {
	for i := range x {
		x[i], y[i], z[i] = LorenzMapStep(x[i], y[i], z[i], p)
	}
}

func ChenMapStep4(x, y, z *[4]float64, p ChenParams) {
	for i := range x {
		x[i], y[i], z[i] = ChenMapStep(x[i], y[i], z[i], p)
	}
}

// 8-lane kernels.

func LogisticMapStep8(v *[8]float64, r float64) {
	for i := range v {
		v[i] = r * v[i] * (1 - v[i])
	}
}

func TentMapStep8(v *[8]float64, mu float64) {
	for i := range v {
		lo := mu * v[i]
		hi := mu * (1 - v[i])
		if v[i] < 0.5 {
			v[i] = lo
		} else {
			v[i] = hi
		}
	}
}

func SineMapStep8(v *[8]float64, r float64) {
	for i := range v {
		v[i] = r * sineApprox(v[i])
	}
}

func HenonMapStep8(x, y *[8]float64, a, b float64) {
	for i := range x {
		x[i], y[i] = HenonMapStep(x[i], y[i], a, b)
	}
}

func LorenzMapStep8(x, y, z *[8]float64, p LorenzParams) {
	for i := range x {
		x[i], y[i], z[i] = LorenzMapStep(x[i], y[i], z[i], p)
	}
}

func ChenMapStep8(x, y, z *[8]float64, p ChenParams) {
	for i := range x {
		x[i], y[i], z[i] = ChenMapStep(x[i], y[i], z[i], p)
	}
}
