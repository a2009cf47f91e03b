package transform

import "math"

// EPSG:3006 (SWEREF99 TM) projection parameters and the GRS 1980 ellipsoid
// it is defined on. These mirror the registry's published values; the
// embedded engine evaluates the projection directly from them instead of
// resolving the code through an external registry database.
const (
	grs80SemiMajor  = 6378137.0         // metres
	grs80Flattening = 1 / 298.257222101 // GRS80 inverse flattening 298.257222101
	tmCentralLon    = 15.0              // central meridian, degrees east
	tmScaleFactor   = 0.9996            // scale factor at the central meridian
	tmFalseEasting  = 500000.0          // metres
	tmFalseNorthing = 0.0               // metres

	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// EmbeddedEngine implements Engine for EPSG:4326 -> EPSG:3006 with a pure-Go
// transverse Mercator evaluation (Kruger's series in the third
// flattening). Accuracy is sub-millimetre inside the projection's validity
// envelope, so for all practical purposes it matches the registry-backed
// transform. SWEREF99 and WGS84 differ by well under a metre, so no datum
// shift is applied; the engine is static and ignores the epoch.
//
// Series reference: Karney, "Transverse Mercator with an accuracy of a few
// nanometers" (2011), truncated to n^3.
type EmbeddedEngine struct {
	a  float64    // rectifying radius, scaled by k0
	n  float64    // third flattening
	al [3]float64 // forward series coefficients
	be [3]float64 // inverse series coefficients
	de [3]float64 // conformal-to-geographic latitude series
}

// NewEmbeddedEngine builds the embedded SWEREF99 TM engine. Construction is
// pure arithmetic and cannot fail.
func NewEmbeddedEngine() *EmbeddedEngine {
	f := grs80Flattening
	n := f / (2 - f)
	n2, n3 := n*n, n*n*n

	e := &EmbeddedEngine{
		n: n,
		a: tmScaleFactor * grs80SemiMajor / (1 + n) * (1 + n2/4 + n2*n2/64),
	}
	e.al = [3]float64{
		n/2 - 2*n2/3 + 5*n3/16,
		13*n2/48 - 3*n3/5,
		61 * n3 / 240,
	}
	e.be = [3]float64{
		n/2 - 2*n2/3 + 37*n3/96,
		n2/48 + n3/15,
		17 * n3 / 480,
	}
	e.de = [3]float64{
		2*n - 2*n2/3 - 2*n3,
		7*n2/3 - 8*n3/5,
		56 * n3 / 15,
	}
	return e
}

// Forward converts WGS84 latitude/longitude in degrees to SWEREF99 TM
// northing/easting in metres. The epoch is ignored (static transform).
func (e *EmbeddedEngine) Forward(lat, lon, _ float64) (north, east float64, err error) {
	phi := lat * deg2rad
	dlam := (lon - tmCentralLon) * deg2rad

	// Conformal latitude.
	es := 2 * math.Sqrt(e.n) / (1 + e.n)
	t := math.Sinh(math.Atanh(math.Sin(phi)) - es*math.Atanh(es*math.Sin(phi)))

	xi := math.Atan2(t, math.Cos(dlam))
	eta := math.Atanh(math.Sin(dlam) / math.Sqrt(1+t*t))

	x, y := xi, eta
	for j, al := range e.al {
		k := 2 * float64(j+1)
		x += al * math.Sin(k*xi) * math.Cosh(k*eta)
		y += al * math.Cos(k*xi) * math.Sinh(k*eta)
	}

	north = tmFalseNorthing + e.a*x
	east = tmFalseEasting + e.a*y

	if math.IsNaN(north) || math.IsInf(north, 0) || math.IsNaN(east) || math.IsInf(east, 0) {
		return 0, 0, ErrNotFinite
	}
	return north, east, nil
}

// Inverse converts SWEREF99 TM northing/easting in metres back to WGS84
// latitude/longitude in degrees. Round-trip self-consistency with Forward
// is better than a millimetre.
func (e *EmbeddedEngine) Inverse(north, east float64) (lat, lon float64, err error) {
	xi := (north - tmFalseNorthing) / e.a
	eta := (east - tmFalseEasting) / e.a

	xip, etap := xi, eta
	for j, be := range e.be {
		k := 2 * float64(j+1)
		xip -= be * math.Sin(k*xi) * math.Cosh(k*eta)
		etap -= be * math.Cos(k*xi) * math.Sinh(k*eta)
	}

	chi := math.Asin(math.Sin(xip) / math.Cosh(etap))
	phi := chi
	for j, de := range e.de {
		k := 2 * float64(j+1)
		phi += de * math.Sin(k*chi)
	}

	lat = phi * rad2deg
	lon = tmCentralLon + math.Atan2(math.Sinh(etap), math.Cos(xip))*rad2deg

	if math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, ErrNotFinite
	}
	return lat, lon, nil
}

// Mode reports ModeStatic; the embedded engine never applies an epoch.
func (e *EmbeddedEngine) Mode() Mode { return ModeStatic }

// Type reports EngineTypeEmbedded.
func (e *EmbeddedEngine) Type() EngineType { return EngineTypeEmbedded }

// Close is a no-op; the embedded engine holds no external resources.
func (e *EmbeddedEngine) Close() {}
