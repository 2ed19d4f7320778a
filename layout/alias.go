package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Flex = layout.Flex
type Alignment = layout.Alignment
type Axis = layout.Axis
type Direction = layout.Direction
type Widget = layout.Widget
type Inset = layout.Inset
type List = layout.List

var UniformInset = layout.UniformInset
var Rigid = layout.Rigid
var Flexed = layout.Flexed
var Exact = layout.Exact
var NewContext = layout.NewContext

const (
	Middle Alignment = layout.Middle
)

const (
	W      Direction = layout.W
	E      Direction = layout.E
	Center Direction = layout.Center
)

const (
	Horizontal Axis = layout.Horizontal
	Vertical   Axis = layout.Vertical
)
