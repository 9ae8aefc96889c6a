package wizard

// The methods below apply one user edit to the draft of the step on screen.
// Editing a slice from another step fails with ErrWrongStep.

func (w *Wizard) on(step Step) error {
	if w.Status != StatusActive {
		return ErrNotActive
	}
	if w.Step != step {
		return ErrWrongStep
	}
	return nil
}

func (w *Wizard) SetBasic(next BasicDraft) error {
	if err := w.on(StepBasic); err != nil {
		return err
	}
	w.Basic = ApplyBasicChange(w.Basic, next)
	return nil
}

func (w *Wizard) SetInfra(next InfraDraft) error {
	if err := w.on(StepInfra); err != nil {
		return err
	}
	w.Infra = ApplyInfraChange(next)
	return nil
}

func (w *Wizard) editMenu(fn func([]CategoryDraft) ([]CategoryDraft, error)) error {
	if err := w.on(StepMenu); err != nil {
		return err
	}
	if w.Drag.Active {
		w.Drag = DragState{}
	}
	menu, err := fn(w.Menu)
	if err != nil {
		return err
	}
	w.Menu = menu
	return nil
}

func (w *Wizard) AddCategory(name string) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return AddCategory(m, name) })
}

func (w *Wizard) RenameCategory(idx int, name string) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return RenameCategory(m, idx, name) })
}

func (w *Wizard) RemoveCategory(idx int) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return RemoveCategory(m, idx) })
}

func (w *Wizard) AddProducts(catIdx int, products []ProductDraft) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return AddProducts(m, catIdx, products) })
}

func (w *Wizard) EditProduct(catIdx, prodIdx int, p ProductDraft) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return EditProduct(m, catIdx, prodIdx, p) })
}

func (w *Wizard) RemoveProduct(catIdx, prodIdx int) error {
	return w.editMenu(func(m []CategoryDraft) ([]CategoryDraft, error) { return RemoveProduct(m, catIdx, prodIdx) })
}

// StartDrag grabs a category, or a product of categoryIndex, at from.
func (w *Wizard) StartDrag(kind DragKind, categoryIndex, from int) error {
	if err := w.on(StepMenu); err != nil {
		return err
	}
	switch kind {
	case DragCategory:
		if !inRange(from, len(w.Menu)) {
			return ErrIndexOutOfRange
		}
	case DragProduct:
		if !inRange(categoryIndex, len(w.Menu)) || !inRange(from, len(w.Menu[categoryIndex].Products)) {
			return ErrIndexOutOfRange
		}
	default:
		return ErrIndexOutOfRange
	}
	w.Drag = w.Drag.Start(kind, categoryIndex, from)
	return nil
}

func (w *Wizard) MoveDrag(kind DragKind, categoryIndex, over int) error {
	if err := w.on(StepMenu); err != nil {
		return err
	}
	w.Drag = w.Drag.Move(kind, categoryIndex, over)
	return nil
}

func (w *Wizard) EndDrag() error {
	if err := w.on(StepMenu); err != nil {
		return err
	}
	w.Menu, w.Drag = w.Drag.End(w.Menu)
	return nil
}

func (w *Wizard) CancelDrag() {
	w.Drag = w.Drag.Cancel()
}
