package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/facilitydesk/facility-booking-backend/internal/booking"
	bookingHttp "github.com/facilitydesk/facility-booking-backend/internal/booking/http"
	"github.com/facilitydesk/facility-booking-backend/internal/building"
	buildingHttp "github.com/facilitydesk/facility-booking-backend/internal/building/http"
	"github.com/facilitydesk/facility-booking-backend/internal/cupboard"
	cupboardHttp "github.com/facilitydesk/facility-booking-backend/internal/cupboard/http"
	"github.com/facilitydesk/facility-booking-backend/internal/facility"
	facilityHttp "github.com/facilitydesk/facility-booking-backend/internal/facility/http"
	"github.com/facilitydesk/facility-booking-backend/internal/maintenance"
	maintenanceHttp "github.com/facilitydesk/facility-booking-backend/internal/maintenance/http"
	"github.com/facilitydesk/facility-booking-backend/internal/resource"
	resourceHttp "github.com/facilitydesk/facility-booking-backend/internal/resource/http"
	"github.com/facilitydesk/facility-booking-backend/internal/resourcetype"
	resourcetypeHttp "github.com/facilitydesk/facility-booking-backend/internal/resourcetype/http"
	"github.com/facilitydesk/facility-booking-backend/internal/shelf"
	shelfHttp "github.com/facilitydesk/facility-booking-backend/internal/shelf/http"
	"github.com/facilitydesk/facility-booking-backend/internal/user"
	userHttp "github.com/facilitydesk/facility-booking-backend/internal/user/http"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *logrus.Logger

	BuildingService     building.Service
	ResourceTypeService resourcetype.Service
	ResourceService     resource.Service
	CupboardService     cupboard.Service
	ShelfService        shelf.Service
	FacilityService     facility.Service
	MaintenanceService  maintenance.Service
	UserService         user.Service
	BookingService      booking.Service
}

// NewRouter initializes the HTTP router engine: middleware (request id,
// request log, recovery, CORS) plus route registration for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	root := r.Group("")
	{
		buildingHttp.RegisterRoutes(root, buildingHttp.NewHandler(cfg.BuildingService))
		resourcetypeHttp.RegisterRoutes(root, resourcetypeHttp.NewHandler(cfg.ResourceTypeService))
		resourceHttp.RegisterRoutes(root, resourceHttp.NewHandler(cfg.ResourceService))
		cupboardHttp.RegisterRoutes(root, cupboardHttp.NewHandler(cfg.CupboardService))
		shelfHttp.RegisterRoutes(root, shelfHttp.NewHandler(cfg.ShelfService))
		facilityHttp.RegisterRoutes(root, facilityHttp.NewHandler(cfg.FacilityService))
		maintenanceHttp.RegisterRoutes(root, maintenanceHttp.NewHandler(cfg.MaintenanceService))
		userHttp.RegisterRoutes(root, userHttp.NewHandler(cfg.UserService))
		bookingHttp.RegisterRoutes(root, bookingHttp.NewHandler(cfg.BookingService))
	}

	return r
}
