package domain

// EmailCategory buckets inbound email for the hub.
type EmailCategory string

const (
	EmailSponsorship EmailCategory = "sponsorship"
	EmailCollab      EmailCategory = "collab"
	EmailFan         EmailCategory = "fan"
	EmailBusiness    EmailCategory = "business"
	EmailOtherCat    EmailCategory = "other"
)

var emailCategories = map[EmailCategory]bool{
	EmailSponsorship: true, EmailCollab: true, EmailFan: true,
	EmailBusiness: true, EmailOtherCat: true,
}

func (c EmailCategory) Valid() bool {
	return emailCategories[c]
}

// EmailStatus is the triage state of a hub email.
type EmailStatus string

const (
	EmailUnread   EmailStatus = "unread"
	EmailRead     EmailStatus = "read"
	EmailReplied  EmailStatus = "replied"
	EmailArchived EmailStatus = "archived"
)

var emailStatuses = map[EmailStatus]bool{
	EmailUnread: true, EmailRead: true, EmailReplied: true, EmailArchived: true,
}

func (s EmailStatus) Valid() bool {
	return emailStatuses[s]
}
