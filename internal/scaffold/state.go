package scaffold

// State is a step of a scaffold run.
type State int

const (
	CollectingInputs State = iota
	ConfirmingComponents
	CheckingTargetAbsence
	Fetching
	ValidatingFetch
	ClassifyingLayout
	ExecutingFileOps
	RewritingIdentifiers
	CollectingParameters
	RewritingParameters
	RegisteringManifest
	Done
)

var stateNames = [...]string{
	CollectingInputs:      "collecting-inputs",
	ConfirmingComponents:  "confirming-components",
	CheckingTargetAbsence: "checking-target",
	Fetching:              "fetching",
	ValidatingFetch:       "validating-fetch",
	ClassifyingLayout:     "classifying-layout",
	ExecutingFileOps:      "executing-file-ops",
	RewritingIdentifiers:  "rewriting-identifiers",
	CollectingParameters:  "collecting-parameters",
	RewritingParameters:   "rewriting-parameters",
	RegisteringManifest:   "registering-manifest",
	Done:                  "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
