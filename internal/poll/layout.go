package poll

import "fmt"

// LayoutType is the poll's presentation style. The API currently defines a
// single layout; values it may add later pass through undisturbed and report
// Known() == false.
type LayoutType int

const LayoutDefault LayoutType = 1

func (l LayoutType) Known() bool {
	return l == LayoutDefault
}

func (l LayoutType) String() string {
	if l == LayoutDefault {
		return "default"
	}
	return fmt.Sprintf("unknown(%d)", int(l))
}

// layoutFromPayload maps the wire value, treating an omitted field (zero) as
// the default layout.
func layoutFromPayload(raw int) LayoutType {
	if raw == 0 {
		return LayoutDefault
	}
	return LayoutType(raw)
}
