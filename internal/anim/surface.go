package anim

// Surface is the render-surface capability the Stepper mutates. Elements are
// addressed by ElementID and keep their properties while detached.
//
// Getters and setters on an ID the surface does not hold are programmer
// errors; the Stepper checks Contains for every scripted element up front.
type Surface interface {
	Contains(id ElementID) bool

	// Attached reports whether id currently has a parent.
	Attached(id ElementID) bool
	// Insert attaches id under parent, before sibling. An empty before appends.
	Insert(parent, id, before ElementID) error
	Detach(id ElementID) error
	Parent(id ElementID) (ElementID, bool)
	// NextSibling returns false when id is the last child of its parent.
	NextSibling(id ElementID) (ElementID, bool)

	Text(id ElementID) string
	SetText(id ElementID, text string)

	ZIndex(id ElementID) (int, bool)
	SetZIndex(id ElementID, z int, ok bool)

	Position(id ElementID, axis Axis) (Coord, bool)
	SetPosition(id ElementID, axis Axis, c Coord, ok bool)

	HasClass(id ElementID, name string) bool
	AddClass(id ElementID, name string)
	RemoveClass(id ElementID, name string)
}

// Observer is notified after every completed transition.
type Observer interface {
	OnStep(index int, dir Direction)
}

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
