package domain

// InspirationSource records where a pre-idea note came from.
type InspirationSource string

const (
	SourceManual       InspirationSource = "manual"
	SourceEmail        InspirationSource = "email"
	SourceSocial       InspirationSource = "social"
	SourceConversation InspirationSource = "conversation"
	SourceArticle      InspirationSource = "article"
	SourceOther        InspirationSource = "other"
)

var inspirationSources = map[InspirationSource]bool{
	SourceManual: true, SourceEmail: true, SourceSocial: true,
	SourceConversation: true, SourceArticle: true, SourceOther: true,
}

func (s InspirationSource) Valid() bool {
	return inspirationSources[s]
}

// InspirationStatus is the review state of an inspiration.
type InspirationStatus string

const (
	InspirationPending   InspirationStatus = "pending"
	InspirationReviewing InspirationStatus = "reviewing"
	InspirationApproved  InspirationStatus = "approved"
	InspirationConverted InspirationStatus = "converted"
	InspirationArchived  InspirationStatus = "archived"
)

var inspirationStatusMeta = map[InspirationStatus]StatusMeta{
	InspirationPending:   {Label: "Pending", Color: "gray", Icon: "inbox"},
	InspirationReviewing: {Label: "Reviewing", Color: "blue", Icon: "eye"},
	InspirationApproved:  {Label: "Approved", Color: "teal", Icon: "thumbs-up"},
	InspirationConverted: {Label: "Converted", Color: "green", Icon: "arrow-right"},
	InspirationArchived:  {Label: "Archived", Color: "slate", Icon: "archive"},
}

func (s InspirationStatus) Valid() bool {
	_, ok := inspirationStatusMeta[s]
	return ok
}

func (s InspirationStatus) Meta() StatusMeta {
	return inspirationStatusMeta[s]
}
