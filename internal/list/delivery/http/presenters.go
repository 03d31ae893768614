package http

import (
	"strings"
	"time"

	"taskpilot/internal/list"
	"taskpilot/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Color string `json:"color" binding:"omitempty,max=32"`
	Icon  string `json:"icon"  binding:"omitempty,max=64"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errBlankName
	}
	return nil
}

func (r createReq) toInput() list.CreateListInput {
	return list.CreateListInput{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// ---

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=255"`
	Color string `json:"color" binding:"omitempty,max=32"`
	Icon  string `json:"icon"  binding:"omitempty,max=64"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() list.UpdateListInput {
	return list.UpdateListInput{
		ID:    r.ID,
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// --- Response DTOs ---

type listResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newListResp(l model.List) listResp {
	return listResp{
		ID:        l.ID,
		Name:      l.Name,
		Color:     l.Color,
		Icon:      l.Icon,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type createResp struct {
	List listResp `json:"list"`
}

func (h *handler) newCreateResp(out list.CreateListOutput) createResp {
	return createResp{List: newListResp(out.List)}
}

type listsResp struct {
	Lists []listResp `json:"lists"`
	Total int        `json:"total"`
}

func (h *handler) newListsResp(out list.ListListsOutput) listsResp {
	lists := make([]listResp, len(out.Lists))
	for i, l := range out.Lists {
		lists[i] = newListResp(l)
	}
	return listsResp{
		Lists: lists,
		Total: out.Total,
	}
}

type detailResp struct {
	List listResp `json:"list"`
}

func (h *handler) newDetailResp(out list.DetailListOutput) detailResp {
	return detailResp{List: newListResp(out.List)}
}

type updateResp struct {
	List listResp `json:"list"`
}

func (h *handler) newUpdateResp(out list.UpdateListOutput) updateResp {
	return updateResp{List: newListResp(out.List)}
}
