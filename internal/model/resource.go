package model

import "time"

// ResourceType classifies what kind of asset a resource is.
type ResourceType string

const (
	ResourceTypeBook        ResourceType = "BOOK"
	ResourceTypeMeetingRoom ResourceType = "MEETING_ROOM"
	ResourceTypeEquipment   ResourceType = "EQUIPMENT"
)

// Resource is a bookable asset. Reservations reference resources
// one-directionally by id, and the reverse view (a resource's calendar)
// is a query.
type Resource struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Author       *string      `json:"author,omitempty"`
	Keywords     *string      `json:"keywords,omitempty"`
	ResourceType ResourceType `json:"resource_type"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

