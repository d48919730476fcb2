// Package model defines domain entities shared by services and views.
package model

// Role is an admin account role.
type Role string

// Known admin roles.
const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleModerator  Role = "moderator"
)

// Identity is the account identity issued by the backend.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AdminProfile carries role and permission grants for admin accounts.
type AdminProfile struct {
	ID          string   `json:"id"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// User is the authenticated account: identity plus an optional admin profile.
// Immutable once fetched except via the session store's update action.
type User struct {
	Identity     Identity      `json:"identity"`
	AdminProfile *AdminProfile `json:"adminProfile,omitempty"`
}

// Performer is the view model consumed by listing views. Derived display
// fields (FullName, StageName) are computed at mapping time and never empty.
type Performer struct {
	ID         string
	FullName   string
	StageName  string
	Email      string
	Status     Status
	Rating     float64
	TotalShows int
	Country    string
	Languages  []string
	StudioID   string
	AppUserID  string
}

// SortDirection orders a listing by a field ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListQuery describes one page request. Page is 1-indexed. A non-empty
// Search expands server-side into an OR of contains-predicates over
// firstName/lastName/email. Status other than StatusAll is translated to
// the backend's numeric code.
type ListQuery struct {
	Page    int
	Limit   int
	OrderBy string
	Order   SortDirection
	Search  string
	Status  Status
}

// PageMeta echoes the server-reported pagination counters. The server is
// the source of truth for Total; the client never recomputes it.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PerformerPage is one fetched page of mapped performers.
type PerformerPage struct {
	Items []Performer
	Meta  PageMeta
}

// Asset is a single media item inside an album.
type Asset struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Album groups performer media assets.
type Album struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Assets []Asset `json:"assets"`
}

// PerformerProfile is the detail view behind a single listing row.
type PerformerProfile struct {
	Performer Performer
	Bio       string
	StudioID  string
}
