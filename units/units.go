// Package units provides the physical constants and openPMD unit
// dimensions used throughout the field-mesh core. Unit dimensions follow
// the openPMD convention: a 7-tuple of exponents over the SI base
// dimensions (length, mass, time, current, temperature, amount, luminous
// intensity).
package units

import "fmt"

// Physical constants (CODATA 2018).
const (
	// Mu0 is the vacuum magnetic permeability in T·m/A.
	Mu0 = 1.25663706212e-06

	// CLight is the speed of light in vacuum in m/s.
	CLight = 299792458.0
)

// Dimension is an openPMD unitDimension: exponents of the seven SI base
// dimensions in the order (L, M, T, I, Θ, N, J).
type Dimension [7]float64

// Known field-record dimensions.
var (
	// Tesla is the dimension of magnetic flux density, kg/(A·s²).
	Tesla = Dimension{0, 1, -2, -1, 0, 0, 0}

	// VoltPerMeter is the dimension of electric field strength, kg·m/(A·s³).
	VoltPerMeter = Dimension{1, 1, -3, -1, 0, 0, 0}
)

// Equal reports whether two dimensions are identical.
func (d Dimension) Equal(other Dimension) bool { return d == other }

// String renders the dimension as its SI exponent tuple.
func (d Dimension) String() string {
	return fmt.Sprintf("(L%g M%g T%g I%g Θ%g N%g J%g)", d[0], d[1], d[2], d[3], d[4], d[5], d[6])
}

// RecordDimension returns the expected unit dimension for a field record
// family ("magneticField" or "electricField"). The bool is false for
// unknown records.
func RecordDimension(record string) (Dimension, bool) {
	switch record {
	case "magneticField":
		return Tesla, true
	case "electricField":
		return VoltPerMeter, true
	default:
		return Dimension{}, false
	}
}
