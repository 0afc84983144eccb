package solutions

import "time"

// Category is a top-level knowledge base grouping
type Category struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	VisibleInPortals []int64   `json:"visible_in_portals"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Folder groups articles inside a category
type Folder struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ParentFolderID    *int64          `json:"parent_folder_id"`
	Hierarchy         []HierarchyItem `json:"hierarchy"`
	ArticlesCount     int             `json:"articles_count"`
	SubFoldersCount   int             `json:"sub_folders_count"`
	Visibility        int             `json:"visibility"`
	CompanyIDs        []int64         `json:"company_ids"`
	ContactSegmentIDs []int64         `json:"contact_segment_ids"`
	CompanySegmentIDs []int64         `json:"company_segment_ids"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Article is a knowledge base article inside a folder
type Article struct {
	ID              int64                  `json:"id"`
	AgentID         int64                  `json:"agent_id"`
	CategoryID      int64                  `json:"category_id"`
	Description     string                 `json:"description"`
	DescriptionText string                 `json:"description_text"`
	FolderID        int64                  `json:"folder_id"`
	Hierarchy       []HierarchyItem        `json:"hierarchy"`
	Hits            int                    `json:"hits"`
	Status          int                    `json:"status"`
	SEOData         map[string]interface{} `json:"seo_data"`
	Tags            []string               `json:"tags"`
	ThumbsDown      int                    `json:"thumbs_down"`
	ThumbsUp        int                    `json:"thumbs_up"`
	Title           string                 `json:"title"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// HierarchyItem is one level of an entity's ancestry chain
type HierarchyItem struct {
	Level int           `json:"level"`
	Type  string        `json:"type"`
	Data  HierarchyData `json:"data"`
}

// HierarchyData identifies the ancestor at a hierarchy level
type HierarchyData struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Article statuses as defined by the Solutions API
const (
	ArticleStatusDraft     = 1
	ArticleStatusPublished = 2
)
