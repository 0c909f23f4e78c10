package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/controllers"
	"github.com/gymsupply/pos-app/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Uploaded product images
	r.Static("/uploads", "public/uploads")

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP, registered before any route so every
	// handler chain picks it up
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	surveyCtrl := controllers.NewSurveyController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	farewellCtrl := controllers.NewFarewellMessageController(db)
	reportCtrl := controllers.NewReportController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter for login/register
	public := r.Group("/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Aggregate rating stats feed a public widget
	r.GET("/v1/feedback/stats", feedbackCtrl.GetStats)

	// Farewell message reads are public, the POS checkout screen polls them
	r.GET("/v1/farewell-messages", farewellCtrl.GetAllMessages)
	r.GET("/v1/farewell-messages/random", farewellCtrl.GetRandomMessage)
	r.GET("/v1/farewell-messages/:message_id", farewellCtrl.GetMessageByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/auth/me", userCtrl.Me)
	auth.POST("/auth/logout", userCtrl.Logout)
	auth.POST("/auth/refresh", userCtrl.Refresh)

	// CUSTOMERS
	customers := auth.Group("/v1/customers")
	{
		customers.GET("/list", customerCtrl.GetAllCustomers)
		customers.POST("/", customerCtrl.CreateCustomer)
		customers.POST("/getList", customerCtrl.GetList)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PUT("/:customer_id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:customer_id", customerCtrl.DeleteCustomer)
	}

	// PRODUCTS (update is a POST so multipart image uploads work)
	products := auth.Group("/v1/products")
	{
		products.GET("/list", productCtrl.GetAllProducts)
		products.GET("/initForm", productCtrl.InitForm)
		products.POST("/", productCtrl.CreateProduct)
		products.POST("/getList", productCtrl.GetList)
		products.GET("/:product_id", productCtrl.GetProductByID)
		products.POST("/:product_id", productCtrl.UpdateProduct)
		products.DELETE("/:product_id", productCtrl.DeleteProduct)
	}

	// ORDERS
	orders := auth.Group("/v1/orders")
	{
		orders.GET("/", orderCtrl.GetAllOrders)
		orders.GET("/list", orderCtrl.GetAllOrders)
		orders.POST("/", orderCtrl.CreateOrder)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
	}

	// SURVEYS
	auth.POST("/v1/surveys", surveyCtrl.CreateSurvey)
	auth.GET("/v1/surveys", surveyCtrl.GetAllSurveys)

	// FEEDBACK
	auth.POST("/v1/feedback", feedbackCtrl.CreateFeedback)
	auth.GET("/v1/feedback", feedbackCtrl.GetAllFeedback)

	// FAREWELL MESSAGE MANAGEMENT (admin only; reads are public, see above)
	farewell := auth.Group("/v1/farewell-messages")
	farewell.Use(middlewares.RequireRoles("admin"))
	{
		farewell.POST("/", farewellCtrl.CreateMessage)
		farewell.PUT("/:message_id", farewellCtrl.UpdateMessage)
		farewell.DELETE("/:message_id", farewellCtrl.DeleteMessage)
	}

	// REPORTS (manager/admin)
	reports := auth.Group("/v1/reports")
	reports.Use(middlewares.RequireRoles("manager", "admin"))
	{
		reports.GET("/sales", reportCtrl.GetSalesReport)
		reports.GET("/product-performance", reportCtrl.GetProductPerformance)
		reports.GET("/inventory", reportCtrl.GetInventoryReport)
	}

	return r
}
