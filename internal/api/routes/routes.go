package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"baanthai-construction-api/config"
	"baanthai-construction-api/internal/api/handlers"
	"baanthai-construction-api/internal/repository"
)

// Deps are the constructed dependencies the router wires into handlers.
type Deps struct {
	Houses     repository.HouseRepository
	Gallery    repository.GalleryRepository
	Content    repository.ContentRepository
	Quotations repository.QuotationRepository
	Blob       handlers.BlobStore
	Log        zerolog.Logger
}

// SetupRouter builds the public and admin route groups. The admin surface is
// unauthenticated: access control is out of scope for this deployment and
// the panel is reachable only from the owner's origin via CORS.
func SetupRouter(cfg config.Config, deps Deps) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	houseHandler := &handlers.HouseHandler{
		Houses:        deps.Houses,
		Blob:          deps.Blob,
		FeaturedLimit: cfg.Site.FeaturedHouseLimit,
		Log:           deps.Log,
	}
	galleryHandler := &handlers.GalleryHandler{
		Gallery: deps.Gallery,
		Houses:  deps.Houses,
		Blob:    deps.Blob,
		Log:     deps.Log,
	}
	contentHandler := &handlers.ContentHandler{Content: deps.Content}
	quotationHandler := &handlers.QuotationHandler{Quotations: deps.Quotations}
	uploadHandler := &handlers.UploadHandler{Blob: deps.Blob}

	apiV1 := router.Group("/api/v1")
	{
		// Public read surface for the marketing pages
		public := apiV1.Group("/")
		{
			public.GET("/houses", houseHandler.ListHouses)
			public.GET("/houses/:id", houseHandler.GetHouse)
			public.GET("/gallery", galleryHandler.ListGalleryItems)
			public.GET("/gallery/:id", galleryHandler.GetGalleryItem)
			public.GET("/content/footer", contentHandler.GetFooter)
			public.GET("/content/hero", contentHandler.GetHero)

			// The one public write: quotation intake
			public.POST("/quotations", quotationHandler.CreateQuotation)
		}

		// Admin panel surface
		admin := apiV1.Group("/admin")
		{
			houses := admin.Group("/houses")
			{
				houses.POST("/", houseHandler.CreateHouse)
				houses.PUT("/:id", houseHandler.UpdateHouse)
				houses.DELETE("/:id", houseHandler.DeleteHouse)
			}

			gallery := admin.Group("/gallery")
			{
				gallery.POST("/", galleryHandler.CreateGalleryItem)
				gallery.PUT("/:id", galleryHandler.UpdateGalleryItem)
				gallery.DELETE("/:id", galleryHandler.DeleteGalleryItem)
			}

			content := admin.Group("/content")
			{
				content.PUT("/footer", contentHandler.SaveFooter)
				content.PUT("/hero", contentHandler.SaveHero)
			}

			quotations := admin.Group("/quotations")
			{
				quotations.GET("/", quotationHandler.ListQuotations)
				quotations.PATCH("/:id/status", quotationHandler.UpdateQuotationStatus)
				quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
			}

			admin.POST("/uploads", uploadHandler.UploadImage)
		}
	}

	return router
}
