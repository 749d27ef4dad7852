// Package model defines database models
package model

import "time"

// Media kinds accepted by the ingestion handler
const (
	KindPhoto = "photo"
	KindVideo = "video"
)

// Media maps a provider-assigned file id to the short public id exposed
// in share links. One row per unique upload, read-only after creation
// except for the ephemeral record-deletion policy.
type Media struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FileID    string    `gorm:"uniqueIndex;not null" json:"file_id"`
	ThumbID   *string   `json:"thumb_id,omitempty"` // Preview asset, videos only
	FileType  string    `gorm:"not null" json:"file_type"`
	PublicID  string    `gorm:"uniqueIndex;size:8;not null" json:"public_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}
