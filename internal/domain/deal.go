package domain

// DealStatus is the CRM pipeline stage of a brand deal. The deal pipeline is
// deliberately independent of the idea lifecycle: same shape, no shared code.
type DealStatus string

const (
	DealLead         DealStatus = "lead"
	DealContacted    DealStatus = "contacted"
	DealNegotiating  DealStatus = "negotiating"
	DealProposalSent DealStatus = "proposal_sent"
	DealAccepted     DealStatus = "accepted"
	DealInProgress   DealStatus = "in_progress"
	DealDelivered    DealStatus = "delivered"
	DealInvoiced     DealStatus = "invoiced"
	DealPaid         DealStatus = "paid"
	DealCompleted    DealStatus = "completed"
	DealLost         DealStatus = "lost"
	DealCancelled    DealStatus = "cancelled"
)

// PipelineStages are the six columns of the pipeline board. Lost and
// cancelled deals are out of pipeline, reachable only via the explicit
// status menu, never via drag.
var PipelineStages = []DealStatus{
	DealLead,
	DealContacted,
	DealNegotiating,
	DealProposalSent,
	DealAccepted,
	DealCompleted,
}

var dealStatusMeta = map[DealStatus]StatusMeta{
	DealLead:         {Label: "Lead", Color: "gray", Icon: "user-plus"},
	DealContacted:    {Label: "Contacted", Color: "blue", Icon: "mail"},
	DealNegotiating:  {Label: "Negotiating", Color: "amber", Icon: "message-circle"},
	DealProposalSent: {Label: "Proposal Sent", Color: "indigo", Icon: "file-text"},
	DealAccepted:     {Label: "Accepted", Color: "teal", Icon: "thumbs-up"},
	DealInProgress:   {Label: "In Progress", Color: "purple", Icon: "loader"},
	DealDelivered:    {Label: "Delivered", Color: "cyan", Icon: "package"},
	DealInvoiced:     {Label: "Invoiced", Color: "orange", Icon: "file"},
	DealPaid:         {Label: "Paid", Color: "green", Icon: "dollar-sign"},
	DealCompleted:    {Label: "Completed", Color: "green", Icon: "check-circle"},
	DealLost:         {Label: "Lost", Color: "red", Icon: "x-circle"},
	DealCancelled:    {Label: "Cancelled", Color: "slate", Icon: "slash"},
}

func (s DealStatus) Valid() bool {
	_, ok := dealStatusMeta[s]
	return ok
}

func (s DealStatus) Meta() StatusMeta {
	return dealStatusMeta[s]
}
