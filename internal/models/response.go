package models

import (
	"time"
)

const dateLayout = "2006-01-02"

type HealthResponse struct {
	Status string `json:"status"`
}

type IdeaResponse struct {
	ID             string    `json:"idea_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Priority       int       `json:"priority"`
	PriorityLabel  string    `json:"priority_label,omitempty"`
	PillarID       string    `json:"pillar_id,omitempty"`
	CategoryID     string    `json:"category_id,omitempty"`
	ContentTypeID  string    `json:"content_type_id,omitempty"`
	FilmingSetupID string    `json:"filming_setup_id,omitempty"`
	InspirationID  string    `json:"inspiration_id,omitempty"`
	ScheduledDate  string    `json:"scheduled_date,omitempty"`
	PublishDate    string    `json:"publish_date,omitempty"`
	FilmedAt       string    `json:"filmed_at,omitempty"`
	PublishedAt    string    `json:"published_at,omitempty"`
	ScriptText     string    `json:"script_text,omitempty"`
	Hook           string    `json:"hook,omitempty"`
	CTA            string    `json:"cta,omitempty"`
	FilmingNotes   string    `json:"filming_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewIdeaResponse flattens nullable columns into the wire shape shared by
// every screen.
func NewIdeaResponse(idea *Idea) IdeaResponse {
	resp := IdeaResponse{
		ID:            idea.ID.String(),
		Title:         idea.Title,
		Status:        string(idea.Status),
		Priority:      int(idea.Priority),
		PriorityLabel: idea.Priority.Label(),
		CreatedAt:     idea.CreatedAt,
		UpdatedAt:     idea.UpdatedAt,
	}
	if idea.PillarID.Valid {
		resp.PillarID = idea.PillarID.UUID.String()
	}
	if idea.CategoryID.Valid {
		resp.CategoryID = idea.CategoryID.UUID.String()
	}
	if idea.ContentTypeID.Valid {
		resp.ContentTypeID = idea.ContentTypeID.UUID.String()
	}
	if idea.FilmingSetupID.Valid {
		resp.FilmingSetupID = idea.FilmingSetupID.UUID.String()
	}
	if idea.InspirationID.Valid {
		resp.InspirationID = idea.InspirationID.UUID.String()
	}
	if idea.ScheduledDate.Valid {
		resp.ScheduledDate = idea.ScheduledDate.Time.Format(dateLayout)
	}
	if idea.PublishDate.Valid {
		resp.PublishDate = idea.PublishDate.Time.Format(dateLayout)
	}
	if idea.FilmedAt.Valid {
		resp.FilmedAt = idea.FilmedAt.Time.Format(time.RFC3339)
	}
	if idea.PublishedAt.Valid {
		resp.PublishedAt = idea.PublishedAt.Time.Format(time.RFC3339)
	}
	if idea.ScriptText.Valid {
		resp.ScriptText = idea.ScriptText.String
	}
	if idea.Hook.Valid {
		resp.Hook = idea.Hook.String
	}
	if idea.CTA.Valid {
		resp.CTA = idea.CTA.String
	}
	if idea.FilmingNotes.Valid {
		resp.FilmingNotes = idea.FilmingNotes.String
	}
	return resp
}

type IdeaListResponse struct {
	Ideas []IdeaResponse `json:"ideas"`
}

func NewIdeaListResponse(ideas []Idea) IdeaListResponse {
	resp := IdeaListResponse{Ideas: make([]IdeaResponse, len(ideas))}
	for i := range ideas {
		resp.Ideas[i] = NewIdeaResponse(&ideas[i])
	}
	return resp
}

type ScriptBlockResponse struct {
	ID         string    `json:"block_id"`
	IdeaID     string    `json:"idea_id"`
	BlockType  string    `json:"block_type"`
	Content    string    `json:"content"`
	Notes      string    `json:"notes,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewScriptBlockResponse(b *ScriptBlock) ScriptBlockResponse {
	resp := ScriptBlockResponse{
		ID:         b.ID.String(),
		IdeaID:     b.IdeaID.String(),
		BlockType:  string(b.BlockType),
		Content:    b.Content,
		OrderIndex: b.OrderIndex,
		CreatedAt:  b.CreatedAt,
	}
	if b.Notes.Valid {
		resp.Notes = b.Notes.String
	}
	return resp
}

type BrollItemResponse struct {
	ID          string    `json:"broll_id"`
	IdeaID      string    `json:"idea_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	SourceFile  string    `json:"source_file,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBrollItemResponse(b *BrollItem) BrollItemResponse {
	resp := BrollItemResponse{
		ID:          b.ID.String(),
		IdeaID:      b.IdeaID.String(),
		Description: b.Description,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
	if b.SourceFile.Valid {
		resp.SourceFile = b.SourceFile.String
	}
	return resp
}

type PlannerItemResponse struct {
	ID        string    `json:"item_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time,omitempty"`
	ItemType  string    `json:"item_type"`
	Title     string    `json:"title,omitempty"`
	IdeaID    string    `json:"idea_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPlannerItemResponse(item *PlannerItem) PlannerItemResponse {
	resp := PlannerItemResponse{
		ID:        item.ID.String(),
		Date:      item.Date.Format(dateLayout),
		StartTime: item.StartTime,
		ItemType:  string(item.ItemType),
		Title:     item.Title,
		CreatedAt: item.CreatedAt,
	}
	if item.IdeaID.Valid {
		resp.IdeaID = item.IdeaID.UUID.String()
	}
	return resp
}

type PlannerItemListResponse struct {
	Items []PlannerItemResponse `json:"items"`
}

func NewPlannerItemListResponse(items []PlannerItem) PlannerItemListResponse {
	resp := PlannerItemListResponse{Items: make([]PlannerItemResponse, len(items))}
	for i := range items {
		resp.Items[i] = NewPlannerItemResponse(&items[i])
	}
	return resp
}

// ScheduleResponse is returned by the dual-write scheduling actions: the
// patched idea plus the planner item the action inserted.
type ScheduleResponse struct {
	Idea        IdeaResponse        `json:"idea"`
	PlannerItem PlannerItemResponse `json:"planner_item"`
}

// UnscheduledResponse holds the two planner drag source lists.
type UnscheduledResponse struct {
	Scripted []IdeaResponse `json:"scripted"`
	Filmed   []IdeaResponse `json:"filmed"`
}

type InspirationResponse struct {
	ID          string    `json:"inspiration_id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	IsProcessed bool      `json:"is_processed"`
	SourceURL   string    `json:"source_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewInspirationResponse(insp *Inspiration) InspirationResponse {
	resp := InspirationResponse{
		ID:          insp.ID.String(),
		Title:       insp.Title,
		Source:      string(insp.Source),
		Status:      string(insp.Status),
		IsProcessed: insp.IsProcessed,
		CreatedAt:   insp.CreatedAt,
	}
	if insp.SourceURL.Valid {
		resp.SourceURL = insp.SourceURL.String
	}
	if insp.Notes.Valid {
		resp.Notes = insp.Notes.String
	}
	return resp
}

type InspirationListResponse struct {
	Inspirations []InspirationResponse `json:"inspirations"`
}

type ConvertInspirationResponse struct {
	Idea        IdeaResponse        `json:"idea"`
	Inspiration InspirationResponse `json:"inspiration"`
}

type BrandResponse struct {
	ID           string    `json:"brand_id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Website      string    `json:"website,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBrandResponse(b *Brand) BrandResponse {
	resp := BrandResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
	if b.ContactName.Valid {
		resp.ContactName = b.ContactName.String
	}
	if b.ContactEmail.Valid {
		resp.ContactEmail = b.ContactEmail.String
	}
	if b.Website.Valid {
		resp.Website = b.Website.String
	}
	if b.Notes.Valid {
		resp.Notes = b.Notes.String
	}
	return resp
}

type DealResponse struct {
	ID        string    `json:"deal_id"`
	BrandID   string    `json:"brand_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Value     float64   `json:"value"`
	Currency  string    `json:"currency"`
	DueDate   string    `json:"due_date,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDealResponse(d *Deal) DealResponse {
	resp := DealResponse{
		ID:        d.ID.String(),
		BrandID:   d.BrandID.String(),
		Title:     d.Title,
		Status:    string(d.Status),
		Value:     d.Value,
		Currency:  d.Currency,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.DueDate.Valid {
		resp.DueDate = d.DueDate.Time.Format(dateLayout)
	}
	if d.Notes.Valid {
		resp.Notes = d.Notes.String
	}
	return resp
}

// PipelineColumn is one board column with its running value total,
// recomputed on every request.
type PipelineColumn struct {
	Status string         `json:"status"`
	Label  string         `json:"label"`
	Total  float64        `json:"total"`
	Deals  []DealResponse `json:"deals"`
}

type PipelineResponse struct {
	Columns []PipelineColumn `json:"columns"`
}

type RevenueResponse struct {
	ID        string    `json:"revenue_id"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Source    string    `json:"source,omitempty"`
	DealID    string    `json:"deal_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRevenueResponse(r *Revenue) RevenueResponse {
	resp := RevenueResponse{
		ID:        r.ID.String(),
		Date:      r.Date.Format(dateLayout),
		Amount:    r.Amount,
		Currency:  r.Currency,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
	}
	if r.DealID.Valid {
		resp.DealID = r.DealID.UUID.String()
	}
	if r.Notes.Valid {
		resp.Notes = r.Notes.String
	}
	return resp
}

type RevenueSummaryResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Total         float64 `json:"total"`
	PriorTotal    float64 `json:"prior_total"`
	GrowthPercent float64 `json:"growth_percent"`
}

type AnalyticsOverviewResponse struct {
	From                  string  `json:"from"`
	To                    string  `json:"to"`
	IdeasCreated          int     `json:"ideas_created"`
	IdeasFilmed           int     `json:"ideas_filmed"`
	IdeasPublished        int     `json:"ideas_published"`
	InspirationsCaptured  int     `json:"inspirations_captured"`
	InspirationsConverted int     `json:"inspirations_converted"`
	RevenueTotal          float64 `json:"revenue_total"`
}

type EmailResponse struct {
	ID          string    `json:"email_id"`
	FromAddress string    `json:"from_address"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	ReceivedAt  time.Time `json:"received_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmailResponse(e *Email) EmailResponse {
	resp := EmailResponse{
		ID:          e.ID.String(),
		FromAddress: e.FromAddress,
		Subject:     e.Subject,
		Category:    string(e.Category),
		Status:      string(e.Status),
		ReceivedAt:  e.ReceivedAt,
		CreatedAt:   e.CreatedAt,
	}
	if e.Body.Valid {
		resp.Body = e.Body.String
	}
	return resp
}

type NamedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardOverviewResponse struct {
	IdeasByStatus   map[string]int        `json:"ideas_by_status"`
	UpcomingItems   []PlannerItemResponse `json:"upcoming_items"`
	PipelineValue   float64               `json:"pipeline_value"`
	UnreadEmails    int                   `json:"unread_emails"`
}
