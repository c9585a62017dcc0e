package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/service"
)

func statusFor(o service.Outcome, okStatus int) int {
	switch o.Kind {
	case service.KindOK:
		return okStatus
	case service.KindNotFound, service.KindNothingToRender:
		return http.StatusNotFound
	case service.KindInvalid:
		return http.StatusBadRequest
	case service.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respond(c *gin.Context, o service.Outcome, okStatus int) {
	c.JSON(statusFor(o, okStatus), o)
}

func listHandler[T any](list func(context.Context) ([]*T, error), entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := list(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			respond(c, service.ErrorOutcome(entity, "loading", err), http.StatusOK)
			return
		}
		if rows == nil {
			rows = []*T{}
		}
		c.JSON(http.StatusOK, rows)
	}
}

func createHandler[T any](s *Server, schema string, create func(context.Context, *T) (*T, service.Outcome)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var v T
		if !s.bindJSON(c, schema, &v) {
			return
		}
		_, outcome := create(c.Request.Context(), &v)
		respond(c, outcome, http.StatusCreated)
	}
}

func deleteHandler(remove func(context.Context, string) service.Outcome) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, remove(c.Request.Context(), c.Param("id")), http.StatusOK)
	}
}

func sendDocument(c *gin.Context, doc *service.Document, o service.Outcome) {
	if !o.Success {
		respond(c, o, http.StatusOK)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func documentHandler(render func(context.Context) (*service.Document, service.Outcome)) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, o := render(c.Request.Context())
		sendDocument(c, doc, o)
	}
}

func documentByIDHandler(render func(context.Context, string) (*service.Document, service.Outcome)) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, o := render(c.Request.Context(), c.Param("id"))
		sendDocument(c, doc, o)
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.svc.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) counts(c *gin.Context) {
	counts, err := s.svc.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respond(c, service.ErrorOutcome("Dashboard", "loading", err), http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) assignEmployee(c *gin.Context) {
	var a models.Assignment
	if !s.bindJSON(c, "assignment", &a) {
		return
	}
	respond(c, s.svc.AssignEmployee(c.Request.Context(), &a), http.StatusCreated)
}

func (s *Server) invoiceSummary(c *gin.Context) {
	summary, o := s.svc.InvoiceSummary(c.Request.Context(), c.Param("id"))
	if !o.Success {
		respond(c, o, http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type paymentRequest struct {
	InvoiceID     string          `json:"invoice_id"`
	PaymentDate   string          `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        *string         `json:"payment_method"`
	TransactionID *string         `json:"transaction_id"`
}

func (s *Server) recordPayment(c *gin.Context) {
	var req paymentRequest
	if !s.bindJSON(c, "payment", &req) {
		return
	}
	p := &models.Payment{
		InvoiceID:     req.InvoiceID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	}
	if req.PaymentDate != "" {
		t, err := models.ParseTimestamp(req.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
			return
		}
		p.PaymentDate = t
	}
	_, o := s.svc.RecordPayment(c.Request.Context(), p)
	respond(c, o, http.StatusCreated)
}

func (s *Server) export(c *gin.Context) {
	doc, o := s.svc.Export(c.Request.Context(), c.Param("entity"))
	sendDocument(c, doc, o)
}
