package routes

import (
	"log"

	"restaurant-backend/config"
	"restaurant-backend/controllers"
	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/repositories"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, db *pgxpool.Pool, cache *redis.Client) {
	userRepo := repositories.NewUserRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	salesRepo := repositories.NewSalesRepository(db)

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}

	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo, cache))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(orderRepo, menuRepo))
	orderItemCtrl := controllers.NewOrderItemController(services.NewOrderItemService(orderItemRepo))
	employeeCtrl := controllers.NewEmployeeController(services.NewEmployeeService(employeeRepo))
	paymentCtrl := controllers.NewPaymentController(services.NewPaymentService(paymentRepo, orderRepo))
	salesCtrl := controllers.NewSalesController(services.NewSalesService(salesRepo, mailer, config.AppConfig.SalesReportEmail))
	authCtrl := controllers.NewAuthController(services.NewAuthService(employeeRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	user := router.Group("/user")
	{
		user.POST("/start", userCtrl.StartUser)
		user.GET("/:id", userCtrl.GetUser)
		user.PUT("/:id", userCtrl.UpdateUser)
		user.DELETE("/:id", userCtrl.DeleteUser)
	}

	menu := router.Group("/menu")
	{
		menu.GET("/", menuCtrl.GetAllMenuItems)
		menu.GET("/:id", menuCtrl.GetMenuItem)
		menu.POST("/", menuCtrl.AddMenuItem)
		menu.PUT("/:id", menuCtrl.UpdateMenuItem)
		menu.DELETE("/:id", menuCtrl.DeleteMenuItem)
	}

	order := router.Group("/order")
	{
		order.POST("/create", orderCtrl.CreateOrder)
		order.GET("/", orderCtrl.GetAllOrders)
		order.PUT("/:id", orderCtrl.UpdateOrderStatus)
		order.GET("/:id", orderCtrl.GetOrderDetails)
		order.DELETE("/:id", orderCtrl.DeleteOrder)
	}

	orderItems := router.Group("/order_items")
	{
		orderItems.POST("/", orderItemCtrl.CreateOrderItem)
		orderItems.GET("/:id", orderItemCtrl.GetOrderItem)
		orderItems.GET("/order/:order_id", orderItemCtrl.GetOrderItemsByOrder)
		orderItems.PUT("/:id", orderItemCtrl.UpdateOrderItem)
		orderItems.DELETE("/:id", orderItemCtrl.DeleteOrderItem)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/", paymentCtrl.CreatePayment)
		payments.GET("/:id", paymentCtrl.GetPayment)
		payments.GET("/order/:order_id", paymentCtrl.GetPaymentsByOrder)
		payments.PUT("/:id", paymentCtrl.UpdatePayment)
		payments.DELETE("/:id", paymentCtrl.DeletePayment)
	}

	employees := router.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/", employeeCtrl.GetAllEmployees)
		employees.GET("/:id", employeeCtrl.GetEmployeeByID)
		employees.POST("/", middleware.ManagerMiddleware(), employeeCtrl.CreateEmployee)
		employees.PUT("/:id", middleware.ManagerMiddleware(), employeeCtrl.UpdateEmployee)
		employees.DELETE("/:id", middleware.ManagerMiddleware(), employeeCtrl.DeleteEmployee)
	}

	sales := router.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.GET("/", salesCtrl.GetAllSales)
		sales.GET("/:id", salesCtrl.GetSaleByID)
		sales.POST("/", salesCtrl.CreateSale)
		sales.PUT("/:id", salesCtrl.UpdateSale)
		sales.DELETE("/:id", salesCtrl.DeleteSale)
	}
}
