package models

// Date fields in requests use the planner's ISO day format, yyyy-MM-dd.
// Times are HH:MM.

type CreateIdeaRequest struct {
	Title          string `json:"title" binding:"required"`
	Status         string `json:"status,omitempty"`
	Priority       int    `json:"priority,omitempty" example:"2"`
	PillarID       string `json:"pillar_id,omitempty"`
	CategoryID     string `json:"category_id,omitempty"`
	ContentTypeID  string `json:"content_type_id,omitempty"`
	FilmingSetupID string `json:"filming_setup_id,omitempty"`
	InspirationID  string `json:"inspiration_id,omitempty"`
	ScriptText     string `json:"script_text,omitempty"`
	Hook           string `json:"hook,omitempty"`
	CTA            string `json:"cta,omitempty"`
	FilmingNotes   string `json:"filming_notes,omitempty"`
}

type UpdateIdeaRequest struct {
	Title          *string `json:"title,omitempty"`
	Priority       *int    `json:"priority,omitempty"`
	PillarID       *string `json:"pillar_id,omitempty"`
	CategoryID     *string `json:"category_id,omitempty"`
	ContentTypeID  *string `json:"content_type_id,omitempty"`
	FilmingSetupID *string `json:"filming_setup_id,omitempty"`
	ScriptText     *string `json:"script_text,omitempty"`
	Hook           *string `json:"hook,omitempty"`
	CTA            *string `json:"cta,omitempty"`
	FilmingNotes   *string `json:"filming_notes,omitempty"`
}

type JumpStatusRequest struct {
	Status string `json:"status" binding:"required" example:"editing"`
}

type ScheduleRequest struct {
	Date      string `json:"date" binding:"required" example:"2025-06-10"`
	StartTime string `json:"start_time,omitempty" example:"09:00"`
}

type CreateScriptBlockRequest struct {
	BlockType string `json:"block_type" binding:"required" example:"hook"`
	Content   string `json:"content"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateScriptBlockRequest struct {
	Content *string `json:"content,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

type CreateBrollRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateBrollRequest struct {
	Description *string `json:"description,omitempty"`
}

type CreatePlannerItemRequest struct {
	Date      string `json:"date" binding:"required" example:"2025-06-10"`
	StartTime string `json:"start_time,omitempty" example:"09:00"`
	ItemType  string `json:"item_type" binding:"required" example:"filming"`
	Title     string `json:"title,omitempty"`
	IdeaID    string `json:"idea_id,omitempty"`
}

type DropIdeaRequest struct {
	IdeaID string `json:"idea_id" binding:"required"`
	Date   string `json:"date" binding:"required" example:"2025-06-15"`
}

type CreateInspirationRequest struct {
	Title     string `json:"title" binding:"required"`
	Source    string `json:"source,omitempty" example:"manual"`
	SourceURL string `json:"source_url,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateInspirationRequest struct {
	Title     *string `json:"title,omitempty"`
	Status    *string `json:"status,omitempty"`
	SourceURL *string `json:"source_url,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ConvertInspirationRequest seeds a new idea from an inspiration. The
// inspiration is marked processed only after the idea insert succeeds.
type ConvertInspirationRequest struct {
	Title    string `json:"title,omitempty"`
	Priority int    `json:"priority,omitempty"`
	PillarID string `json:"pillar_id,omitempty"`
}

type CreateBrandRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Website      string `json:"website,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type UpdateBrandRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Website      *string `json:"website,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type CreateDealRequest struct {
	BrandID  string  `json:"brand_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Status   string  `json:"status,omitempty" example:"lead"`
	Value    float64 `json:"value,omitempty"`
	Currency string  `json:"currency,omitempty" example:"USD"`
	DueDate  string  `json:"due_date,omitempty" example:"2025-07-01"`
	Notes    string  `json:"notes,omitempty"`
}

type UpdateDealRequest struct {
	Title    *string  `json:"title,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Currency *string  `json:"currency,omitempty"`
	DueDate  *string  `json:"due_date,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type DealStatusRequest struct {
	Status string `json:"status" binding:"required" example:"negotiating"`
}

type CreateRevenueRequest struct {
	Date     string  `json:"date" binding:"required" example:"2025-06-01"`
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency,omitempty" example:"USD"`
	Source   string  `json:"source,omitempty" example:"adsense"`
	DealID   string  `json:"deal_id,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type CreateEmailRequest struct {
	FromAddress string `json:"from_address" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body,omitempty"`
	Category    string `json:"category,omitempty" example:"sponsorship"`
	ReceivedAt  string `json:"received_at,omitempty" example:"2025-06-01T10:30:00Z"`
}

type EmailStatusRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

type EmailReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

type CreateNamedRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
