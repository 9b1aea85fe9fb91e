package orb

import "strconv"

// ViewBoxSize is the edge of the gradient strategy's internal coordinate
// space. Geometry is fixed in these units; only the output size changes.
const ViewBoxSize = 400.0

// gradientStack is the static vector strategy: concentric gradient circles
// and a cluster of energy nodes, scaled uniformly from the view box.
type gradientStack struct{}

func (gradientStack) Name() string { return "gradient" }

// energyNode is one static dot near the center of the body.
type energyNode struct {
	x, y, r, opacity float64
}

var energyNodes = [4]energyNode{
	{x: 188, y: 186, r: 3, opacity: 0.9},
	{x: 214, y: 194, r: 2.5, opacity: 0.7},
	{x: 196, y: 214, r: 4, opacity: 0.8},
	{x: 178, y: 206, r: 2.5, opacity: 0.6},
}

func (gradientStack) Compose(size Size) *Visual {
	px := ResolveScale(size)
	const c = ViewBoxSize / 2

	layers := []Layer{
		{
			Name:   "atmosphere-outer",
			Kind:   ShapeCircle,
			Group:  GroupAtmosphere,
			X:      c,
			Y:      c,
			Radius: 130,
			Fill: Paint{Kind: PaintRadial, Stops: []Stop{
				{Offset: 0, Color: colorIndigo500, Opacity: 0.6},
				{Offset: 1, Color: colorIndigo500, Opacity: 0},
			}},
			Opacity: 0.3,
			Blur:    12,
		},
		{
			Name:   "atmosphere-inner",
			Kind:   ShapeCircle,
			Group:  GroupAtmosphere,
			X:      c,
			Y:      c,
			Radius: 110,
			Fill: Paint{Kind: PaintRadial, Stops: []Stop{
				{Offset: 0, Color: colorViolet500, Opacity: 0.7},
				{Offset: 1, Color: colorViolet500, Opacity: 0},
			}},
			Opacity: 0.4,
			Blur:    8,
		},
		{
			Name:   "body",
			Kind:   ShapeCircle,
			Group:  GroupBody,
			X:      c,
			Y:      c,
			Radius: 80,
			Fill: Paint{Kind: PaintRadial, FocusX: -0.25, FocusY: -0.3, Stops: []Stop{
				{Offset: 0, Color: colorBlue200, Opacity: 1},
				{Offset: 0.35, Color: colorIndigo400, Opacity: 1},
				{Offset: 0.7, Color: colorIndigo600, Opacity: 1},
				{Offset: 1, Color: colorIndigo900, Opacity: 1},
			}},
			Opacity: 1,
		},
		{
			Name:   "gloss",
			Kind:   ShapeCircle,
			Group:  GroupGloss,
			X:      c,
			Y:      c,
			Radius: 80,
			Fill: Paint{Kind: PaintLinear, Angle: 90, Stops: []Stop{
				{Offset: 0, Color: colorWhite, Opacity: 0.7},
				{Offset: 0.5, Color: colorWhite, Opacity: 0},
			}},
			Opacity: 0.6,
		},
		{
			Name:   "neural",
			Kind:   ShapeCircle,
			Group:  GroupNeural,
			X:      c,
			Y:      c,
			Radius: 70,
			Fill: Paint{Kind: PaintRadial, Stops: []Stop{
				{Offset: 0, Color: colorViolet300, Opacity: 0.5},
				{Offset: 1, Color: colorIndigo500, Opacity: 0},
			}},
			Opacity: 0.8,
		},
	}

	for i, n := range energyNodes {
		layers = append(layers, Layer{
			Name:    "node-" + strconv.Itoa(i+1),
			Kind:    ShapeDot,
			Group:   GroupNode,
			X:       n.x,
			Y:       n.y,
			Radius:  n.r,
			Fill:    Solid(colorIndigo100, 1),
			Opacity: n.opacity,
		})
	}

	return &Visual{
		Width:   px,
		Height:  px,
		ViewBox: ViewBoxSize,
		Layers:  layers,
	}
}
