package wizard

import "slices"

type DragKind string

const (
	DragCategory DragKind = "category"
	DragProduct  DragKind = "product"
)

// DragState is either idle (Active false) or dragging one row of a collection.
// For product drags CategoryIndex names the category whose products move; a
// product can only be dropped inside its own category.
type DragState struct {
	Active        bool     `json:"active"`
	Kind          DragKind `json:"kind,omitempty"`
	CategoryIndex int      `json:"categoryIndex"`
	FromIndex     int      `json:"fromIndex"`
	OverIndex     int      `json:"overIndex"`
}

// Start grabs row from. Starting while a drag is active replaces it.
func (s DragState) Start(kind DragKind, categoryIndex, from int) DragState {
	if kind == DragCategory {
		categoryIndex = 0
	}
	return DragState{Active: true, Kind: kind, CategoryIndex: categoryIndex, FromIndex: from, OverIndex: from}
}

// Move follows the row under the pointer. Rows of another collection are ignored.
func (s DragState) Move(kind DragKind, categoryIndex, over int) DragState {
	if !s.Active || kind != s.Kind || over < 0 {
		return s
	}
	if kind == DragProduct && categoryIndex != s.CategoryIndex {
		return s
	}
	s.OverIndex = over
	return s
}

// End drops the row at OverIndex and returns the reordered menu with an idle
// state. A drop on the starting row, or on a row that no longer exists, leaves
// the menu untouched.
func (s DragState) End(cats []CategoryDraft) ([]CategoryDraft, DragState) {
	if !s.Active || s.FromIndex == s.OverIndex {
		return cats, DragState{}
	}
	switch s.Kind {
	case DragCategory:
		if !inRange(s.FromIndex, len(cats)) || !inRange(s.OverIndex, len(cats)) {
			return cats, DragState{}
		}
		return ArrayMove(cloneMenu(cats), s.FromIndex, s.OverIndex), DragState{}
	case DragProduct:
		if !inRange(s.CategoryIndex, len(cats)) {
			return cats, DragState{}
		}
		n := len(cats[s.CategoryIndex].Products)
		if !inRange(s.FromIndex, n) || !inRange(s.OverIndex, n) {
			return cats, DragState{}
		}
		out := cloneMenu(cats)
		out[s.CategoryIndex].Products = ArrayMove(out[s.CategoryIndex].Products, s.FromIndex, s.OverIndex)
		return out, DragState{}
	}
	return cats, DragState{}
}

// Cancel abandons the drag without touching the menu.
func (s DragState) Cancel() DragState {
	return DragState{}
}

// ArrayMove removes the element at from and inserts it at to, keeping the
// relative order of every other element. It never swaps.
func ArrayMove[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
