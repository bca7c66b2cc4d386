package domain

// IdeaStatus is the lifecycle stage of an idea. The set is closed: no code
// path may assign a value outside this enum.
type IdeaStatus string

const (
	IdeaDraft     IdeaStatus = "draft"
	IdeaScripted  IdeaStatus = "scripted"
	IdeaPlanned   IdeaStatus = "planned"
	IdeaToFilm    IdeaStatus = "to_film"
	IdeaFilmed    IdeaStatus = "filmed"
	IdeaEditing   IdeaStatus = "editing"
	IdeaScheduled IdeaStatus = "scheduled"
	IdeaPublished IdeaStatus = "published"
	IdeaArchived  IdeaStatus = "archived"
)

// IdeaStatusOrder is the canonical lifecycle ordering. Archived sits outside
// the ordering: reachable from any stage and terminal.
var IdeaStatusOrder = []IdeaStatus{
	IdeaDraft,
	IdeaScripted,
	IdeaPlanned,
	IdeaToFilm,
	IdeaFilmed,
	IdeaEditing,
	IdeaScheduled,
	IdeaPublished,
}

// ideaSuccessor is the fixed successor table for the advance action. Each
// non-terminal stage has exactly one next stage; published and archived have
// none. This is intentionally not a transition graph: the jump action may set
// any status, forward or backward, without a guard.
var ideaSuccessor = map[IdeaStatus]IdeaStatus{
	IdeaDraft:     IdeaScripted,
	IdeaScripted:  IdeaPlanned,
	IdeaPlanned:   IdeaToFilm,
	IdeaToFilm:    IdeaFilmed,
	IdeaFilmed:    IdeaEditing,
	IdeaEditing:   IdeaScheduled,
	IdeaScheduled: IdeaPublished,
}

// Next returns the successor stage and whether one exists. Advancing a stage
// with no successor is a no-op for callers.
func (s IdeaStatus) Next() (IdeaStatus, bool) {
	next, ok := ideaSuccessor[s]
	return next, ok
}

func (s IdeaStatus) Valid() bool {
	_, ok := ideaStatusMeta[s]
	return ok
}

// StatusMeta carries the display metadata shared by every screen that renders
// a status badge. One table per entity type instead of a copy per screen.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var ideaStatusMeta = map[IdeaStatus]StatusMeta{
	IdeaDraft:     {Label: "Draft", Color: "gray", Icon: "pencil"},
	IdeaScripted:  {Label: "Scripted", Color: "blue", Icon: "file-text"},
	IdeaPlanned:   {Label: "Planned", Color: "indigo", Icon: "calendar"},
	IdeaToFilm:    {Label: "To Film", Color: "amber", Icon: "video"},
	IdeaFilmed:    {Label: "Filmed", Color: "orange", Icon: "film"},
	IdeaEditing:   {Label: "Editing", Color: "purple", Icon: "scissors"},
	IdeaScheduled: {Label: "Scheduled", Color: "teal", Icon: "clock"},
	IdeaPublished: {Label: "Published", Color: "green", Icon: "check-circle"},
	IdeaArchived:  {Label: "Archived", Color: "slate", Icon: "archive"},
}

func (s IdeaStatus) Meta() StatusMeta {
	return ideaStatusMeta[s]
}

// ProductionStatuses are the stages shown in the production workspace.
// Draft, scheduled, published and archived ideas are excluded from it.
var ProductionStatuses = []IdeaStatus{
	IdeaScripted,
	IdeaPlanned,
	IdeaToFilm,
	IdeaFilmed,
	IdeaEditing,
}

// Priority is a three-level idea priority where 1 is highest.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return ""
}

// ScriptBlockType classifies an ordered block of an idea's script.
type ScriptBlockType string

const (
	BlockHook       ScriptBlockType = "hook"
	BlockIntro      ScriptBlockType = "intro"
	BlockMain       ScriptBlockType = "main"
	BlockPoint      ScriptBlockType = "point"
	BlockTransition ScriptBlockType = "transition"
	BlockCTA        ScriptBlockType = "cta"
	BlockOutro      ScriptBlockType = "outro"
	BlockCustom     ScriptBlockType = "custom"
)

var scriptBlockTypes = map[ScriptBlockType]bool{
	BlockHook: true, BlockIntro: true, BlockMain: true, BlockPoint: true,
	BlockTransition: true, BlockCTA: true, BlockOutro: true, BlockCustom: true,
}

func (t ScriptBlockType) Valid() bool {
	return scriptBlockTypes[t]
}

// BrollStatus is a two-state checklist flag for a b-roll shot.
type BrollStatus string

const (
	BrollNeeded BrollStatus = "needed"
	BrollFilmed BrollStatus = "filmed"
)

// Toggle flips the checklist state.
func (s BrollStatus) Toggle() BrollStatus {
	if s == BrollNeeded {
		return BrollFilmed
	}
	return BrollNeeded
}

func (s BrollStatus) Valid() bool {
	return s == BrollNeeded || s == BrollFilmed
}
