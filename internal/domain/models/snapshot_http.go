package models

// Requests for the snapshot HTTP endpoint. Defined in domain for consistency and reuse.

type SnapshotRequest struct {
	NewsLimit int `query:"news_limit" json:"news_limit" default:"10" validate:"gte=1,lte=50"`
}
