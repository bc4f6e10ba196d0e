package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// BlockInstance is a configured child block inside a section instance.
type BlockInstance struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Settings map[string]interface{} `json:"settings"`
}

// SectionInstance is a configured section placed on a page template.
// Type keys into the section registry; unknown types are tolerated by the
// renderer rather than rejected here.
type SectionInstance struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Settings map[string]interface{} `json:"settings"`
	Blocks   []BlockInstance        `json:"blocks,omitempty"`
	Disabled bool                   `json:"disabled,omitempty"`
}

// PageTemplate is the full document describing one themed page: a map of
// section instances plus the ordered list of ids to render. Ids present in
// Sections but absent from Order are inert.
type PageTemplate struct {
	Name     string                     `json:"name"`
	Sections map[string]SectionInstance `json:"sections"`
	Order    []string                   `json:"order"`
}

func (t PageTemplate) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *PageTemplate) Scan(value interface{}) error {
	if value == nil {
		*t = PageTemplate{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PageTemplate")
	}

	return json.Unmarshal(bytes, t)
}

// ThemeTemplate is the persisted row holding a page template document,
// addressed by a template key such as "index".
type ThemeTemplate struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Key      string       `gorm:"uniqueIndex;not null" json:"key"`
	Template PageTemplate `gorm:"type:jsonb" json:"template"`
}

type SaveTemplateRequest struct {
	Name     string                     `json:"name"`
	Sections map[string]SectionInstance `json:"sections" binding:"required"`
	Order    []string                   `json:"order" binding:"required"`
}
