package mockapi

import (
	"github.com/gin-gonic/gin"
	"github.com/venkatakrishna06/restaurant-pos/models"
	"gorm.io/gorm"
)

// Server is the reference implementation of the REST API the client
// consumes. It backs local development and the test suite; the production
// deployment serves the same contract.
type Server struct {
	DB     *gorm.DB
	Engine *gin.Engine
}

func NewServer(db *gorm.DB) (*Server, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Table{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.StaffMember{},
	); err != nil {
		return nil, err
	}

	s := &Server{DB: db}
	s.Engine = s.setupRouter()
	return s, nil
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(SecurityHeaders())
	r.Use(CORSMiddleware())
	r.Use(RequestLogger())

	auth := NewAuthController(s.DB)
	tables := NewTableController(s.DB)
	menus := NewMenuController(s.DB)
	orders := NewOrderController(s.DB)
	staff := NewStaffController(s.DB)
	payments := NewPaymentController(s.DB)

	r.POST("/login", auth.Login)
	r.POST("/first-admin", auth.FirstAdmin)

	protected := r.Group("/")
	protected.Use(AuthMiddleware())
	{
		protected.POST("/auth/logout", auth.Logout)
		protected.PUT("/auth/profile", auth.UpdateProfile)
		protected.PUT("/auth/password", auth.ChangePassword)

		protected.GET("/menu-items", menus.ListItems)
		protected.POST("/menu-items", menus.CreateItem)
		protected.PUT("/menu-items/:id", menus.UpdateItem)
		protected.DELETE("/menu-items/:id", menus.DeleteItem)

		protected.GET("/menu-categories", menus.ListCategories)
		protected.POST("/menu-categories", menus.CreateCategory)
		protected.PUT("/menu-categories/:id", menus.UpdateCategory)
		protected.DELETE("/menu-categories/:id", menus.DeleteCategory)

		protected.GET("/orders", orders.List)
		protected.POST("/orders", orders.Create)
		protected.PUT("/orders/:id", orders.Update)
		protected.DELETE("/orders/:id", orders.Delete)

		protected.GET("/restaurant-tables", tables.List)
		protected.POST("/restaurant-tables", tables.Create)
		protected.PUT("/restaurant-tables/:id", tables.Update)
		protected.DELETE("/restaurant-tables/:id", tables.Delete)

		protected.GET("/staff", staff.List)
		protected.POST("/staff", staff.Create)
		protected.PUT("/staff/:id", staff.Update)
		protected.DELETE("/staff/:id", staff.Delete)

		protected.GET("/payments", payments.List)
		protected.POST("/payments", payments.Create)
		protected.PUT("/payments/:id", payments.Update)
	}

	return r
}
