package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
)

type unitForm struct {
	UnitCode    string `form:"unit_code" json:"unit_code"`
	UnitName    string `form:"unit_name" json:"unit_name"`
	Description string `form:"description" json:"description"`
}

func (h *Handler) renderUnits(c *gin.Context, status int, v *view.UnitList) {
	render(c, status, "units.html", page{Title: "Units", View: v})
}

// units returns the session's unit list, mounting it first if this session
// never opened it.
func (h *Handler) units(c *gin.Context, st *sessionState) *view.UnitList {
	v := st.unitList()
	if v.Phase == view.PhaseIdle {
		v.Mount(c.Request.Context(), h.api)
	}
	return v
}

func (h *Handler) mountUnits(c *gin.Context) {
	id, st := h.loadSession(c)
	v := st.unitList()
	v.Mount(c.Request.Context(), h.api)
	h.saveSession(c, id, st)
	h.renderUnits(c, statusFor(nil), v)
}

func (h *Handler) createUnit(c *gin.Context) {
	var form unitForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}

	id, st := h.loadSession(c)
	v := h.units(c, st)
	err := v.Create(c.Request.Context(), h.api, domain.Unit{
		UnitCode:    form.UnitCode,
		UnitName:    strings.TrimSpace(form.UnitName),
		Description: strings.TrimSpace(form.Description),
	})
	h.saveSession(c, id, st)
	h.renderUnits(c, statusFor(err), v)
}

func (h *Handler) deleteUnit(c *gin.Context) {
	id, st := h.loadSession(c)
	v := h.units(c, st)
	err := v.Delete(c.Request.Context(), h.api, c.Param("unit"))
	h.saveSession(c, id, st)
	h.renderUnits(c, statusFor(err), v)
}

func (h *Handler) updateUnit(c *gin.Context) {
	var form unitForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}

	id, st := h.loadSession(c)
	v := h.units(c, st)
	err := v.Update(c.Request.Context(), h.api, c.Param("unit"), domain.UnitUpdate{
		UnitName:    strings.TrimSpace(form.UnitName),
		Description: strings.TrimSpace(form.Description),
	})
	h.saveSession(c, id, st)
	h.renderUnits(c, statusFor(err), v)
}
