package api

import "github.com/charmss/admin-client/internal/model"

// PerformerDTO is the raw listing shape returned by the backend, prior to
// mapping into the view model. Status is a pointer because an absent status
// must not read as code 0.
type PerformerDTO struct {
	ID         string   `json:"_id" validate:"required"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Status     *int     `json:"status"`
	Rating     float64  `json:"rating"`
	TotalShows int      `json:"totalShows"`
	Country    string   `json:"country"`
	Languages  []string `json:"languages"`
	StudioID   string   `json:"studioId"`
	AppUserID  string   `json:"appUserId"`
}

// ListMeta is the server-reported pagination block.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type performerListResponse struct {
	Data []PerformerDTO `json:"data" validate:"dive"`
	Meta ListMeta       `json:"meta"`
}

type callbackResponse struct {
	JWT  string      `json:"jwt"`
	User *model.User `json:"user"`
}

// PerformerProfileDTO is the detail shape behind a single listing row.
type PerformerProfileDTO struct {
	PerformerDTO
	Bio string `json:"bio"`
}

// AssetDTO is one media item inside an album.
type AssetDTO struct {
	ID   string `json:"_id" validate:"required"`
	Type string `json:"type"`
	URL  string `json:"fileUrl"`
}

// AlbumDTO groups performer media assets.
type AlbumDTO struct {
	ID     string     `json:"_id" validate:"required"`
	Title  string     `json:"title"`
	Assets []AssetDTO `json:"assets" validate:"dive"`
}

type albumListResponse struct {
	Data []AlbumDTO `json:"data" validate:"dive"`
}

// ListParams is the wire form of a listing query. Where is the serialized
// filter; Status is the backend numeric code, nil when unfiltered.
type ListParams struct {
	Page    int
	Limit   int
	OrderBy string
	Order   model.SortDirection
	Where   string
	Status  *int
}
