package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/charmss/admin-client/internal/api"
	"github.com/charmss/admin-client/internal/convert"
	"github.com/charmss/admin-client/internal/errs"
	"github.com/charmss/admin-client/internal/model"
)

const defaultLimit = 10

// PerformerBackend is the slice of the API client the listing service
// depends on.
type PerformerBackend interface {
	ListPerformers(ctx context.Context, p api.ListParams) ([]api.PerformerDTO, api.ListMeta, error)
	PerformerProfile(ctx context.Context, id string) (*api.PerformerProfileDTO, error)
	PerformerAlbums(ctx context.Context, performerProfileID string) ([]api.AlbumDTO, error)
}

// PerformerService defines listing and detail operations over performers.
type PerformerService interface {
	// FetchPage builds the wire query, fetches one page, and maps it. The
	// returned meta echoes the server verbatim. A response superseded by a
	// newer FetchPage call returns ErrStaleResponse.
	FetchPage(ctx context.Context, q model.ListQuery) (model.PerformerPage, error)
	// Profile returns the detail view behind a listing row.
	Profile(ctx context.Context, id string) (*model.PerformerProfile, error)
	// Albums returns the media albums tied to a performer profile.
	Albums(ctx context.Context, performerProfileID string) ([]model.Album, error)
}

type PerformerServiceImpl struct {
	backend PerformerBackend
	seq     atomic.Int64
	log     *zap.Logger
}

// NewPerformerService constructs PerformerService.
func NewPerformerService(backend PerformerBackend, log *zap.Logger) *PerformerServiceImpl {
	return &PerformerServiceImpl{backend: backend, log: log}
}

type containsClause struct {
	Contains string `json:"contains"`
}

type searchFilter struct {
	Or []map[string]containsClause `json:"or"`
}

// buildWhere expands a free-text search into an OR of contains-predicates
// over first name, last name, and email. Empty search means no filter.
func buildWhere(search string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	f := searchFilter{Or: []map[string]containsClause{
		{"firstName": {Contains: search}},
		{"lastName": {Contains: search}},
		{"email": {Contains: search}},
	}}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode search filter: %w", err)
	}
	return string(b), nil
}

// FetchPage issues one GET with page, limit, sort, and filter parameters.
// Each call takes a sequence number; if a newer call was issued before this
// one resolved, the resolved page is discarded so the last request issued,
// not the last response to arrive, wins.
func (s *PerformerServiceImpl) FetchPage(ctx context.Context, q model.ListQuery) (model.PerformerPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Order == "" {
		q.Order = model.SortAsc
	}

	where, err := buildWhere(q.Search)
	if err != nil {
		return model.PerformerPage{}, err
	}

	params := api.ListParams{
		Page:    q.Page,
		Limit:   q.Limit,
		OrderBy: q.OrderBy,
		Order:   q.Order,
		Where:   where,
	}
	if q.Status != "" && q.Status != model.StatusAll {
		if code, ok := model.StatusCode(q.Status); ok {
			params.Status = &code
		} else {
			s.log.Warn("status has no wire encoding, ignoring filter",
				zap.String("status", string(q.Status)))
		}
	}

	seq := s.seq.Add(1)

	dtos, meta, err := s.backend.ListPerformers(ctx, params)
	if err != nil {
		return model.PerformerPage{}, err
	}
	if s.seq.Load() != seq {
		return model.PerformerPage{}, fmt.Errorf("performers page %d: %w", q.Page, errs.ErrStaleResponse)
	}

	return model.PerformerPage{
		Items: convert.FromPerformerDTOs(dtos),
		Meta: model.PageMeta{
			Total:      meta.Total,
			Page:       meta.Page,
			Limit:      meta.Limit,
			TotalPages: meta.TotalPages,
		},
	}, nil
}

// Profile fetches and maps a single performer's detail view.
func (s *PerformerServiceImpl) Profile(ctx context.Context, id string) (*model.PerformerProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("validation: empty performer id")
	}
	dto, err := s.backend.PerformerProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return convert.FromProfileDTO(dto), nil
}

// Albums fetches and maps the albums for a performer profile.
func (s *PerformerServiceImpl) Albums(ctx context.Context, performerProfileID string) ([]model.Album, error) {
	if performerProfileID == "" {
		return nil, fmt.Errorf("validation: empty performer profile id")
	}
	dtos, err := s.backend.PerformerAlbums(ctx, performerProfileID)
	if err != nil {
		return nil, err
	}
	return convert.FromAlbumDTOs(dtos), nil
}
