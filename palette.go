package orb

// Fixed palettes. There is no theming.
//
// The layered strategy is drawn in code blues; the gradient strategy in
// indigo.
const (
	colorWhite = "#ffffff"

	colorCode     = "#3178c6"
	colorCodeDeep = "#2b6cb0"
	colorBlue800  = "#1e40af"
	colorBlue900  = "#1e3a8a"
	colorSlate800 = "#1e293b"

	colorBlue200   = "#bfdbfe"
	colorIndigo100 = "#e0e7ff"
	colorIndigo400 = "#818cf8"
	colorIndigo500 = "#6366f1"
	colorIndigo600 = "#4f46e5"
	colorIndigo900 = "#312e81"
	colorViolet300 = "#c4b5fd"
	colorViolet500 = "#8b5cf6"
)

// GlowColor is the color of the halo around a glowing layer.
const GlowColor = colorCode

// HaloSigma returns the blur of the halo around a shape of radius r at glow
// intensity g. At g = 0.4 a sphere of radius 40 gets a 20px shadow blur.
func HaloSigma(r, g float64) float64 {
	return r * 0.625 * g
}
