package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.requestLogger())
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(s.corsMiddleware())
	}

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	api.POST("/login", s.login)
	api.POST("/logout", s.logout)

	api.Use(s.requireSession())
	api.GET("/counts", s.counts)

	svc := s.svc

	api.GET("/clients", listHandler(svc.ListClients, "Clients"))
	api.POST("/addClient", createHandler(s, "client", svc.AddClient))
	api.DELETE("/deleteClient/:id", deleteHandler(svc.DeleteClient))
	api.GET("/downloadClient/:id", documentByIDHandler(svc.ClientProfilePDF))
	api.GET("/downloadAllClients", documentHandler(svc.ClientRosterPDF))

	api.GET("/projects", listHandler(svc.ListProjects, "Projects"))
	api.POST("/addProject", createHandler(s, "project", svc.AddProject))
	api.DELETE("/deleteProject/:id", deleteHandler(svc.DeleteProject))
	api.GET("/downloadProject/:id", documentByIDHandler(svc.ProjectProfilePDF))
	api.GET("/downloadAllProjects", documentHandler(svc.ProjectRosterPDF))

	api.GET("/employees", listHandler(svc.ListEmployees, "Employees"))
	api.POST("/addEmployee", createHandler(s, "employee", svc.AddEmployee))
	api.DELETE("/deleteEmployee/:id", deleteHandler(svc.DeleteEmployee))
	api.GET("/downloadEmployee/:id", documentByIDHandler(svc.EmployeeProfilePDF))
	api.GET("/downloadAllEmployees", documentHandler(svc.EmployeeRosterPDF))
	api.POST("/assignEmployee", s.assignEmployee)

	api.GET("/suppliers", listHandler(svc.ListSuppliers, "Suppliers"))
	api.POST("/addSupplier", createHandler(s, "supplier", svc.AddSupplier))
	api.DELETE("/deleteSupplier/:id", deleteHandler(svc.DeleteSupplier))
	api.GET("/downloadSupplier/:id", documentByIDHandler(svc.SupplierProfilePDF))
	api.GET("/downloadAllSuppliers", documentHandler(svc.SupplierRosterPDF))

	api.GET("/materials", listHandler(svc.ListMaterials, "Materials"))
	api.POST("/addMaterial", createHandler(s, "material", svc.AddMaterial))
	api.DELETE("/deleteMaterial/:id", deleteHandler(svc.DeleteMaterial))
	api.GET("/downloadMaterial/:id", documentByIDHandler(svc.MaterialProfilePDF))
	api.GET("/downloadAllMaterials", documentHandler(svc.MaterialRosterPDF))

	api.GET("/services", listHandler(svc.ListServices, "Services"))
	api.POST("/addService", createHandler(s, "service", svc.AddService))
	api.DELETE("/deleteService/:id", deleteHandler(svc.DeleteService))

	api.GET("/invoices", listHandler(svc.ListInvoices, "Invoices"))
	api.POST("/generateInvoice", createHandler(s, "invoice", svc.GenerateInvoice))
	api.DELETE("/deleteInvoice/:id", deleteHandler(svc.DeleteInvoice))
	api.GET("/downloadInvoice/:id", documentByIDHandler(svc.InvoicePDF))
	api.GET("/invoiceSummary/:id", s.invoiceSummary)

	api.GET("/payments", listHandler(svc.ListPayments, "Payments"))
	api.POST("/recordPayment", s.recordPayment)
	api.DELETE("/deletePayment/:id", deleteHandler(svc.DeletePayment))
	api.GET("/downloadPayment/:id", documentByIDHandler(svc.PaymentReceiptPDF))

	api.GET("/downloadMasterReport", documentHandler(svc.MasterReportPDF))
	api.GET("/export/:entity", s.export)

	return r
}
