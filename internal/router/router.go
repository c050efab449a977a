package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/umersanii/CableManagement-sub001/internal/config"
	"github.com/umersanii/CableManagement-sub001/internal/handler"
	"github.com/umersanii/CableManagement-sub001/internal/infra"
	"github.com/umersanii/CableManagement-sub001/internal/middleware"
	"github.com/umersanii/CableManagement-sub001/internal/printing"
	"github.com/umersanii/CableManagement-sub001/internal/render"
	"github.com/umersanii/CableManagement-sub001/internal/repository"
	"github.com/umersanii/CableManagement-sub001/internal/service"
	"github.com/umersanii/CableManagement-sub001/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/Orchestrator ← DB/Redis/Sink
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	sink := infra.NewCUPSSink()
	orchestrator := printing.New(sink, printing.Config{
		OutputDir: cfg.OutputDir,
		Render: render.Config{
			CompanyName:    cfg.CompanyName,
			CompanyAddress: cfg.CompanyAddress,
			CurrencySymbol: cfg.CurrencySymbol,
			ShowLogo:       cfg.ShowLogo,
			LogoPath:       cfg.LogoPath,
		},
		BatchDelay: cfg.BatchDelay(),
	})
	reclaimer := printing.NewReclaimer(cfg.OutputDir, cfg.Retention())

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	invoiceRepo := repository.NewInvoiceRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	documentSvc := service.NewDocumentService(invoiceRepo, returnRepo, snapshotRepo)
	printSvc := service.NewPrintService(orchestrator, reclaimer, dispatcher, invoiceRepo, returnRepo, snapshotRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	documentsH := handler.NewDocumentsHandler(documentSvc)
	printingH := handler.NewPrintingHandler(printSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/invoices", documentsH.CreateInvoice)
		v1.GET("/invoices", documentsH.ListInvoices)
		v1.GET("/invoices/:id", documentsH.GetInvoice)

		v1.POST("/returns", documentsH.CreateReturn)
		v1.GET("/returns", documentsH.ListReturns)
		v1.GET("/returns/:id", documentsH.GetReturn)

		v1.POST("/snapshots", documentsH.CreateSnapshot)
		v1.GET("/snapshots", documentsH.ListSnapshots)
		v1.GET("/snapshots/:id", documentsH.GetSnapshot)

		v1.GET("/printers", printingH.ListPrinters)
		v1.POST("/documents/:kind/:id/print", printingH.Print)
		v1.POST("/documents/:kind/:id/preview", printingH.Preview)
		v1.POST("/documents/:kind/:id/email", printingH.Email)
		v1.POST("/print/batch", printingH.PrintBatch)

		v1.POST("/maintenance/reclaim", printingH.Reclaim)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
