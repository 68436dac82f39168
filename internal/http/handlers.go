package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/core"
	"expensetracker/internal/report"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Expense Tracker API"})
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var in core.TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	t := core.NewTransaction(in)
	if err := s.store.Insert(c.Request.Context(), t); err != nil {
		slog.ErrorContext(c.Request.Context(), "Insert transaction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save transaction"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleListTransactions(c *gin.Context) {
	items, err := s.store.FindAll(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "List transactions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	core.SortByDateDesc(items)
	if items == nil {
		items = []core.Transaction{}
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleDeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	deleted, err := s.store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Delete transaction failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

func (s *Server) handleSummary(c *gin.Context) {
	items, err := s.store.FindAll(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Summary fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, core.ComputeSummary(items))
}

func (s *Server) handleAnalytics(c *gin.Context) {
	items, err := s.store.FindAll(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Analytics fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, core.ComputeAnalytics(items))
}

func (s *Server) handleReportPDF(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := s.store.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Report fetch failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}

	summary := core.ComputeSummary(items)
	analytics := core.ComputeAnalytics(items)
	doc, err := s.renderer.Render(items, summary, analytics)
	if err != nil {
		slog.ErrorContext(ctx, "Report rendering failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.Filename(time.Now()))
	c.Data(http.StatusOK, "application/pdf", doc)
}
