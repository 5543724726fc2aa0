package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/agrodat/property360/internal/model"
	"github.com/agrodat/property360/internal/service"
	"github.com/agrodat/property360/internal/weather"
)

type Handler struct {
	fields    *service.FieldService
	tasks     *service.TaskService
	ledger    *service.LedgerService
	reports   *service.ReportService
	assistant *service.AssistantService
	log       zerolog.Logger
}

func NewHandler(
	fields *service.FieldService,
	tasks *service.TaskService,
	ledger *service.LedgerService,
	reports *service.ReportService,
	assistant *service.AssistantService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		fields:    fields,
		tasks:     tasks,
		ledger:    ledger,
		reports:   reports,
		assistant: assistant,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/property", h.getProperty)
	router.PUT("/property", h.saveProperty)
	router.POST("/property/fields", h.addField)
	router.PATCH("/property/fields/:id/cycle", h.updateFieldCycle)
	router.POST("/property/fields/:id/close-cycle", h.closeCycle)
	router.PUT("/property/fields/:id/soil", h.upsertSoilAnalysis)
	router.DELETE("/property/fields/:id", h.deleteField)

	router.GET("/productivity/history", h.seasonHistory)

	router.GET("/tasks", h.listTasks)
	router.POST("/tasks", h.saveTask)
	router.PATCH("/tasks/:id/status", h.setTaskStatus)
	router.DELETE("/tasks/:id", h.deleteTask)

	router.GET("/transactions", h.listTransactions)
	router.POST("/transactions", h.saveTransaction)
	router.DELETE("/transactions/:id", h.deleteTransaction)
	router.GET("/finance/summary", h.financeSummary)
	router.GET("/finance/series", h.financeSeries)
	router.POST("/reports/financial/export", h.exportReport)
	router.POST("/reports/financial/export/pdf", h.exportReportPDF)

	router.GET("/assistant/messages", h.assistantTranscript)
	router.POST("/assistant/messages", h.askAssistant)

	router.GET("/weather", h.getWeather)
}

func (h *Handler) getProperty(c *gin.Context) {
	c.JSON(http.StatusOK, h.fields.Property())
}

func (h *Handler) saveProperty(c *gin.Context) {
	var property model.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.fields.SaveProperty(property)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

type addFieldRequest struct {
	Name string  `json:"name" binding:"required"`
	Area float64 `json:"areaHectares"`
	Crop string  `json:"crop" binding:"required"`
}

func (h *Handler) addField(c *gin.Context) {
	var req addFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field, err := h.fields.AddField(model.Field{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:        req.Name,
		Area:        req.Area,
		Crop:        req.Crop,
		CycleStatus: model.CycleStatusAwaiting,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

type cycleUpdateRequest struct {
	CycleStatus          *string  `json:"cycleStatus"`
	CycleProgressPercent *float64 `json:"cycleProgressPercent"`
	YieldPerHectare      *float64 `json:"yieldPerHectare"`
}

func (h *Handler) updateFieldCycle(c *gin.Context) {
	var req cycleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := service.CycleUpdate{
		Progress: req.CycleProgressPercent,
		Yield:    req.YieldPerHectare,
	}
	if req.CycleStatus != nil {
		status, err := parseCycleStatus(*req.CycleStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cycleStatus"})
			return
		}
		update.Status = &status
	}

	field, err := h.fields.UpdateFieldCycle(c.Param("id"), update)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

type closeCycleRequest struct {
	FinalYield float64 `json:"finalYield"`
	Season     string  `json:"season" binding:"required"`
}

func (h *Handler) closeCycle(c *gin.Context) {
	var req closeCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fields.CloseCycle(c.Param("id"), req.FinalYield, req.Season); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) upsertSoilAnalysis(c *gin.Context) {
	var analysis model.SoilAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.fields.UpsertSoilAnalysis(c.Param("id"), analysis)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteField(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	if err := h.fields.DeleteField(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) seasonHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.fields.SeasonHistory())
}

func (h *Handler) listTasks(c *gin.Context) {
	filter := service.TaskFilter{
		Query:    c.Query("q"),
		Priority: model.TaskPriority(c.Query("priority")),
		Assignee: c.Query("assignee"),
	}
	c.JSON(http.StatusOK, h.tasks.Filter(filter))
}

func (h *Handler) saveTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.tasks.Save(task)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setTaskStatus(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.SetStatus(taskID, model.TaskStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context) {
	taskID, ok := parseID(c)
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.tasks.Delete(taskID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Transactions())
}

func (h *Handler) saveTransaction(c *gin.Context) {
	var transaction model.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.ledger.Save(transaction)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	transactionID, ok := parseID(c)
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.ledger.Delete(transactionID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) financeSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Summary(time.Now()))
}

func (h *Handler) financeSeries(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.MonthlySeries(time.Now()))
}

type exportReportRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Direction string `json:"direction"`
	Category  string `json:"category"`
}

func (r exportReportRequest) filter() service.ReportFilter {
	return service.ReportFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Direction: r.Direction,
		Category:  r.Category,
	}
}

func (h *Handler) exportReport(c *gin.Context) {
	var req exportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.ExportExcel(req.filter())
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportReportPDF(c *gin.Context) {
	var req exportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.ExportPDF(req.filter())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) assistantTranscript(c *gin.Context) {
	c.JSON(http.StatusOK, h.assistant.Transcript())
}

type askAssistantRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) askAssistant(c *gin.Context) {
	var req askAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.assistant.Ask(c.Request.Context(), req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *Handler) getWeather(c *gin.Context) {
	forecast := weather.Forecast()
	c.JSON(http.StatusOK, gin.H{
		"forecast":      forecast,
		"sprayAdvisory": weather.SprayAdvisory(forecast.Current),
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAssistantBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Destructive routes require an explicit confirm=true query parameter.
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: pass confirm=true"})
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func parseCycleStatus(raw string) (model.CycleStatus, error) {
	status := model.CycleStatus(raw)
	switch status {
	case model.CycleStatusPlanting, model.CycleStatusDeveloping, model.CycleStatusMaturing,
		model.CycleStatusHarvesting, model.CycleStatusHarvested, model.CycleStatusAwaiting:
		return status, nil
	}
	return "", service.ErrInvalidInput
}
