package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"BaselExplorer/internal/bank"
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
	"BaselExplorer/internal/portfolio"
	"BaselExplorer/internal/provisioning"
	"BaselExplorer/internal/session"
)

// Handler exposes the simulator over JSON.
type Handler struct {
	svc *session.Service
}

// NewHandler registers all routes on r.
func NewHandler(r *gin.Engine, svc *session.Service) *Handler {
	h := &Handler{svc: svc}
	v1 := r.Group("/api/v1")
	{
		s := v1.Group("/sessions")
		s.POST("", h.Start)
		s.GET("/:id", h.State)
		s.POST("/:id/init", h.Initialize)
		s.GET("/:id/summary", h.Summary)
		s.GET("/:id/audit", h.Audit)
		s.POST("/:id/preview", h.Preview)
		s.POST("/:id/commit", h.Commit)
		s.DELETE("/:id", h.Reset)

		v1.POST("/rwa", h.RWA)
		v1.POST("/provisioning", h.Provisioning)
		v1.POST("/constraint", h.Constraint)
	}
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	return h
}

func (h *Handler) Start(c *gin.Context) {
	var req session.StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	id, state, err := h.svc.Start(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "state": state})
}

func (h *Handler) Initialize(c *gin.Context) {
	var req session.StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	state, err := h.svc.Initialize(c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h *Handler) Audit(c *gin.Context) {
	records, err := h.svc.Audit(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) State(c *gin.Context) {
	state, err := h.svc.State(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) Preview(c *gin.Context) {
	var params model.YearParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Preview(c.Param("id"), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Commit(c *gin.Context) {
	var params model.YearParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, state, err := h.svc.Commit(c.Param("id"), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec, "state": state})
}

func (h *Handler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) RWA(c *gin.Context) {
	var p model.Portfolio
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, portfolio.Evaluate(p))
}

// provisioningRequest leaves scenario and model nil when absent; model may
// only be omitted together with compare.
type provisioningRequest struct {
	LoanBook     float64                  `json:"loan_book"`
	InterestRate float64                  `json:"interest_rate"`
	Scenario     *model.Scenario          `json:"scenario"`
	Model        *model.ProvisioningModel `json:"model"`
	Compare      bool                     `json:"compare"`
}

func (h *Handler) Provisioning(c *gin.Context) {
	var req provisioningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Scenario == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scenario is required"})
		return
	}
	if req.Model == nil && !req.Compare {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model is required unless compare is set"})
		return
	}
	in := provisioning.Input{LoanBook: req.LoanBook, InterestRate: req.InterestRate, Scenario: *req.Scenario}
	if req.Model != nil {
		in.Model = *req.Model
	}
	in = in.Clamp()

	if req.Compare {
		cmp, err := provisioning.Compare(in.LoanBook, in.InterestRate, in.Scenario)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cmp)
		return
	}
	res, err := provisioning.Simulate(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

type constraintRequest struct {
	Capital    float64 `json:"capital"`
	Assets     float64 `json:"assets"`
	RWAPercent float64 `json:"rwa_percent"`
}

func (h *Handler) Constraint(c *gin.Context) {
	var req constraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calculator.EvaluateDualConstraint(req.Capital, req.Assets, req.RWAPercent))
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, bank.ErrNotInitialized):
		status = http.StatusNotFound
	case errors.Is(err, bank.ErrAlreadyInitialized):
		status = http.StatusConflict
	case errors.Is(err, bank.ErrInvalidParameter):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrAuditUnavailable):
		status = http.StatusNotImplemented
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
