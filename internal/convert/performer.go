// Package convert maps backend DTOs into view models.
package convert

import (
	"fmt"
	"strings"

	"github.com/charmss/admin-client/internal/api"
	"github.com/charmss/admin-client/internal/model"
)

// displayName joins first/last name, falling back to email and finally to a
// generated placeholder so listing rows are never blank.
func displayName(first, last, email, id string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name != "" {
		return name
	}
	if email != "" {
		return email
	}
	return fmt.Sprintf("User %s", id)
}

// FromPerformerDTO maps one raw performer row into the view model. An
// absent status decodes to inactive, absent numeric fields stay zero.
func FromPerformerDTO(in api.PerformerDTO) model.Performer {
	status := model.StatusInactive
	if in.Status != nil {
		status = model.StatusFromCode(*in.Status)
	}

	stage := strings.TrimSpace(in.Username)
	if stage == "" {
		stage = displayName(in.FirstName, in.LastName, in.Email, in.ID)
	}

	return model.Performer{
		ID:         in.ID,
		FullName:   displayName(in.FirstName, in.LastName, in.Email, in.ID),
		StageName:  stage,
		Email:      in.Email,
		Status:     status,
		Rating:     in.Rating,
		TotalShows: in.TotalShows,
		Country:    in.Country,
		Languages:  in.Languages,
		StudioID:   in.StudioID,
		AppUserID:  in.AppUserID,
	}
}

// FromPerformerDTOs maps a whole page, preserving order.
func FromPerformerDTOs(in []api.PerformerDTO) []model.Performer {
	out := make([]model.Performer, 0, len(in))
	for _, dto := range in {
		out = append(out, FromPerformerDTO(dto))
	}
	return out
}

// FromProfileDTO maps the detail response behind a listing row.
func FromProfileDTO(in *api.PerformerProfileDTO) *model.PerformerProfile {
	if in == nil {
		return nil
	}
	return &model.PerformerProfile{
		Performer: FromPerformerDTO(in.PerformerDTO),
		Bio:       in.Bio,
		StudioID:  in.StudioID,
	}
}

// FromAlbumDTOs maps albums with their assets.
func FromAlbumDTOs(in []api.AlbumDTO) []model.Album {
	out := make([]model.Album, 0, len(in))
	for _, a := range in {
		assets := make([]model.Asset, 0, len(a.Assets))
		for _, as := range a.Assets {
			assets = append(assets, model.Asset{ID: as.ID, Type: as.Type, URL: as.URL})
		}
		out = append(out, model.Album{ID: a.ID, Title: a.Title, Assets: assets})
	}
	return out
}
