package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/facilitydesk/facility-booking-backend/internal/api"
	"github.com/facilitydesk/facility-booking-backend/internal/auth"
	"github.com/facilitydesk/facility-booking-backend/internal/booking"
	"github.com/facilitydesk/facility-booking-backend/internal/building"
	"github.com/facilitydesk/facility-booking-backend/internal/cupboard"
	"github.com/facilitydesk/facility-booking-backend/internal/facility"
	"github.com/facilitydesk/facility-booking-backend/internal/maintenance"
	"github.com/facilitydesk/facility-booking-backend/internal/resource"
	"github.com/facilitydesk/facility-booking-backend/internal/resourcetype"
	"github.com/facilitydesk/facility-booking-backend/internal/shelf"
	"github.com/facilitydesk/facility-booking-backend/internal/user"
)

// Config holds external dependencies for building the container.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	BcryptCost   int
	Logger       *logrus.Logger
}

// Container wires repositories, services and the HTTP router together.
type Container struct {
	Router *gin.Engine

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

// NewContainer builds the full dependency graph in dependency order.
func NewContainer(cfg Config) *Container {
	buildingService := building.NewService(building.NewPgxRepository(cfg.DBPool))
	resourceTypeService := resourcetype.NewService(resourcetype.NewPgxRepository(cfg.DBPool))
	resourceService := resource.NewService(resource.NewPgxRepository(cfg.DBPool), buildingService, resourceTypeService)
	cupboardService := cupboard.NewService(cupboard.NewPgxRepository(cfg.DBPool), resourceService)
	shelfService := shelf.NewService(shelf.NewPgxRepository(cfg.DBPool), cupboardService)
	facilityService := facility.NewService(facility.NewPgxRepository(cfg.DBPool), resourceService)
	maintenanceService := maintenance.NewService(maintenance.NewPgxRepository(cfg.DBPool), resourceService)

	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	userService := user.NewService(user.NewPgxRepository(cfg.DBPool), hasher)

	bookingService := booking.NewService(booking.NewPgxRepository(cfg.DBPool), resourceService, shelfService, userService)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		Logger:       cfg.Logger,

		BuildingService:     buildingService,
		ResourceTypeService: resourceTypeService,
		ResourceService:     resourceService,
		CupboardService:     cupboardService,
		ShelfService:        shelfService,
		FacilityService:     facilityService,
		MaintenanceService:  maintenanceService,
		UserService:         userService,
		BookingService:      bookingService,
	})

	return &Container{
		Router: router,

		BuildingService:     buildingService,
		ResourceTypeService: resourceTypeService,
		ResourceService:     resourceService,
		CupboardService:     cupboardService,
		ShelfService:        shelfService,
		FacilityService:     facilityService,
		MaintenanceService:  maintenanceService,
		UserService:         userService,
		BookingService:      bookingService,
	}
}
