package wizard

import "errors"

// Step identifies a wizard screen.
type Step int

const (
	StepBasic Step = iota
	StepMenu
	StepInfra
)

var stepLabels = [...]string{"Básico", "Cardápio", "Infra"}

func (s Step) Label() string {
	if s < StepBasic || s > StepInfra {
		return ""
	}
	return stepLabels[s]
}

const (
	subtitleRequired = "Esse campo é obrigatório."
	titleMenu        = "Complete o cardápio"
)

// Notice is a blocking validation failure: a transient notification with a title,
// a subtitle, and the step that has to be fixed.
type Notice struct {
	Step     Step
	Title    string
	Subtitle string
}

func (n *Notice) Error() string {
	if n.Subtitle == "" {
		return n.Title
	}
	return n.Title + ": " + n.Subtitle
}

func notice(step Step, title, subtitle string) error {
	return &Notice{Step: step, Title: title, Subtitle: subtitle}
}

// AsNotice unwraps a *Notice from err.
func AsNotice(err error) (*Notice, bool) {
	var n *Notice
	if errors.As(err, &n) {
		return n, true
	}
	return nil, false
}

var (
	ErrIndexOutOfRange = errors.New("wizard: index out of range")
	ErrNoNextStep      = errors.New("wizard: already on the last step")
	ErrNotLastStep     = errors.New("wizard: submit is only available on the last step")
	ErrNotActive       = errors.New("wizard: not active")
	ErrWrongStep       = errors.New("wizard: draft belongs to another step")
)
