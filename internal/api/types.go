package api

import "github.com/akaver/beautycase/internal/store"

// --- Cosmetic types ---

// CosmeticRequest is the request body for POST /cosmetics and
// PUT /cosmetics/{id}. Photo travels as base64 in JSON.
type CosmeticRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status"`
	Photo    []byte `json:"photo,omitempty"`
}

// CosmeticResponse is the JSON representation of a single item.
type CosmeticResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status"`
	Photo    []byte `json:"photo,omitempty"`
}

// CosmeticListResponse is the response for GET /cosmetics.
type CosmeticListResponse struct {
	Cosmetics []CosmeticResponse `json:"cosmetics"`
}

func toCosmeticResponse(c store.CosmeticItem) CosmeticResponse {
	resp := CosmeticResponse{
		ID:       c.ID,
		Name:     c.Name,
		Category: string(c.Category),
		Status:   string(c.Status),
		Photo:    c.Photo,
	}
	if c.Type != nil {
		resp.Type = string(*c.Type)
	}
	return resp
}

// --- Look types ---

// LookRequest is the request body for POST /looks and PUT /looks/{id}.
type LookRequest struct {
	Title       string   `json:"title"`
	Note        string   `json:"note,omitempty"`
	CosmeticIDs []string `json:"cosmetic_ids"`
}

// LookResponse is the JSON representation of a single look.
type LookResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Note        string   `json:"note,omitempty"`
	CosmeticIDs []string `json:"cosmetic_ids"`
}

// LookListResponse is the response for GET /looks.
type LookListResponse struct {
	Looks []LookResponse `json:"looks"`
}

func toLookResponse(l store.Look) LookResponse {
	ids := l.CosmeticIDs
	if ids == nil {
		ids = []string{}
	}
	return LookResponse{ID: l.ID, Title: l.Title, Note: l.Note, CosmeticIDs: ids}
}

// --- Day usage types ---

// DayRequest is the request body for PUT /days/{key}: a full replace of both
// id lists.
type DayRequest struct {
	LookIDs     []string `json:"look_ids"`
	CosmeticIDs []string `json:"cosmetic_ids"`
}

// DayRefRequest is the request body for POST /days/{key}/looks and
// POST /days/{key}/cosmetics.
type DayRefRequest struct {
	ID string `json:"id"`
}

// DayResponse is the JSON representation of one day's usage entry.
type DayResponse struct {
	DayKey      string   `json:"day_key"`
	LookIDs     []string `json:"look_ids"`
	CosmeticIDs []string `json:"cosmetic_ids"`
}

// DayListResponse is the response for GET /days.
type DayListResponse struct {
	Days []DayResponse `json:"days"`
}

func toDayResponse(e store.UsageEntry) DayResponse {
	looks := e.LookIDs
	if looks == nil {
		looks = []string{}
	}
	cosmetics := e.CosmeticIDs
	if cosmetics == nil {
		cosmetics = []string{}
	}
	return DayResponse{DayKey: e.DayKey, LookIDs: looks, CosmeticIDs: cosmetics}
}

// TodayResponse is the response for GET /today: the resolved looks and items
// used today.
type TodayResponse struct {
	DayKey    string             `json:"day_key"`
	Looks     []LookResponse     `json:"looks"`
	Cosmetics []CosmeticResponse `json:"cosmetics"`
}

// --- Stats types ---

// LegendRowResponse is one category share row of the stats legend.
type LegendRowResponse struct {
	Category string `json:"category"`
	Percent  int    `json:"percent"`
}

// StatsResponse is the response for GET /stats.
type StatsResponse struct {
	Range           string              `json:"range"`
	Total           int                 `json:"total"`
	PeriodStart     string              `json:"period_start"`
	PeriodEnd       string              `json:"period_end"`
	Legend          []LegendRowResponse `json:"legend"`
	FavoriteInsight string              `json:"favorite_insight,omitempty"`
	GapInsight      string              `json:"gap_insight,omitempty"`
}

// --- App state ---

// AppStateResponse is the response for GET /appstate: the opaque launch
// state plus the support URL the client should open for the support state.
type AppStateResponse struct {
	State      string `json:"state"`
	SupportURL string `json:"support_url,omitempty"`
}
