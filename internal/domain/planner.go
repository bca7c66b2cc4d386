package domain

// PlannerItemType classifies a calendar slot.
type PlannerItemType string

const (
	SlotFilming    PlannerItemType = "filming"
	SlotEditing    PlannerItemType = "editing"
	SlotPublishing PlannerItemType = "publishing"
	SlotTask       PlannerItemType = "task"
	SlotMeeting    PlannerItemType = "meeting"
	SlotOther      PlannerItemType = "other"
)

var plannerItemMeta = map[PlannerItemType]StatusMeta{
	SlotFilming:    {Label: "Filming", Color: "amber", Icon: "video"},
	SlotEditing:    {Label: "Editing", Color: "purple", Icon: "scissors"},
	SlotPublishing: {Label: "Publishing", Color: "green", Icon: "send"},
	SlotTask:       {Label: "Task", Color: "gray", Icon: "check-square"},
	SlotMeeting:    {Label: "Meeting", Color: "blue", Icon: "users"},
	SlotOther:      {Label: "Other", Color: "slate", Icon: "circle"},
}

func (t PlannerItemType) Valid() bool {
	_, ok := plannerItemMeta[t]
	return ok
}

func (t PlannerItemType) Meta() StatusMeta {
	return plannerItemMeta[t]
}

// Default start times assigned when an idea is dropped onto a planner day.
// Drag-and-drop never asks for a time; filming slots land in the morning,
// publishing slots at noon.
const (
	DefaultFilmingTime    = "09:00"
	DefaultPublishingTime = "12:00"
)
