package domain

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPlanning  EventStatus = "planning"
	EventConfirmed EventStatus = "confirmed"
	EventCompleted EventStatus = "completed"
)

// ValidEventStatuses is the canonical set of accepted event status strings.
var ValidEventStatuses = map[EventStatus]bool{
	EventDraft: true, EventPlanning: true, EventConfirmed: true, EventCompleted: true,
}

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePlanning  ScheduleStatus = "planning"
	ScheduleConfirmed ScheduleStatus = "confirmed"
)

type VendorStatus string

const (
	VendorResearching VendorStatus = "researching"
	VendorContacted   VendorStatus = "contacted"
	VendorQuoted      VendorStatus = "quoted"
	VendorBooked      VendorStatus = "booked"
	VendorConfirmed   VendorStatus = "confirmed"
)

type RSVPStatus string

const (
	RSVPInvited   RSVPStatus = "invited"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPMaybe     RSVPStatus = "maybe"
)

// ValidRSVPStatuses is the canonical set of accepted RSVP strings.
var ValidRSVPStatuses = map[RSVPStatus]bool{
	RSVPInvited: true, RSVPConfirmed: true, RSVPDeclined: true, RSVPMaybe: true,
}

type BudgetItemStatus string

const (
	BudgetItemEstimated BudgetItemStatus = "estimated"
	BudgetItemQuoted    BudgetItemStatus = "quoted"
	BudgetItemConfirmed BudgetItemStatus = "confirmed"
)

type BudgetItemSource string

const (
	SourceUser     BudgetItemSource = "user"
	SourceAI       BudgetItemSource = "ai"
	SourceExternal BudgetItemSource = "external-estimate"
)

type PriceType string

const (
	PriceFixed     PriceType = "fixed"
	PricePerPerson PriceType = "per_person"
	PricePerHour   PriceType = "per_hour"
	PricePerItem   PriceType = "per_item"
)

type ModuleStatus string

const (
	ModuleIdle     ModuleStatus = "idle"
	ModuleScouting ModuleStatus = "scouting"
	ModuleReview   ModuleStatus = "review"
	ModuleBooked   ModuleStatus = "booked"
)

// ValidModuleStatuses is the canonical set of accepted module status strings.
var ValidModuleStatuses = map[ModuleStatus]bool{
	ModuleIdle: true, ModuleScouting: true, ModuleReview: true, ModuleBooked: true,
}

// CanTransition reports whether a module may move from s to next.
// The lifecycle is idle → scouting → review → booked, with booked → review
// as the only backward edge (user reset). Re-searching keeps a module in
// review, so review → review is allowed.
func (s ModuleStatus) CanTransition(next ModuleStatus) bool {
	switch s {
	case ModuleIdle:
		return next == ModuleScouting
	case ModuleScouting:
		return next == ModuleReview
	case ModuleReview:
		return next == ModuleReview || next == ModuleBooked
	case ModuleBooked:
		return next == ModuleReview
	default:
		return false
	}
}

type BudgetStatus string

const (
	BudgetNone   BudgetStatus = "no_budget"
	BudgetWithin BudgetStatus = "within_budget"
	BudgetOver   BudgetStatus = "over_budget"
)

type NoteAuthor string

const (
	NoteByAI   NoteAuthor = "ai"
	NoteByUser NoteAuthor = "user"
)

type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// WellKnownModuleKeys are the decision modules every plan starts with.
// The key doubles as the module's stable identifier and category type.
var WellKnownModuleKeys = []string{"venue", "catering", "entertainment"}

// PerPersonModules marks module types whose candidate prices are quoted
// per head rather than as a flat total.
var PerPersonModules = map[string]bool{"catering": true}
