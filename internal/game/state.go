package game

// Phase is the current stage of the session flow.
type Phase string

const (
	PhaseMenu            Phase = "menu"
	PhaseLogin           Phase = "login"
	PhaseRegister        Phase = "register"
	PhaseCharacterSelect Phase = "character_select"
	PhasePlaying         Phase = "playing"
)

// transitions is the legal phase graph. The menu → character_select edge is
// the resume path for an account that already logged in.
var transitions = map[Phase][]Phase{
	PhaseMenu:            {PhaseLogin, PhaseRegister, PhaseCharacterSelect},
	PhaseLogin:           {PhaseCharacterSelect, PhaseMenu},
	PhaseRegister:        {PhaseCharacterSelect, PhaseLogin, PhaseMenu},
	PhaseCharacterSelect: {PhasePlaying, PhaseMenu},
	PhasePlaying:         {PhaseMenu},
}

// canTransition reports whether from → to is a legal edge. Staying in the
// same phase is always allowed.
func canTransition(from, to Phase) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
