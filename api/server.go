package api

import (
	"fmt"
	"net/http"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/Lkoenig2121/ebay/internal/token"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router      *gin.Engine
	dbStore     db.Store
	tokenMaker  token.Maker
	config      *util.Config
	eventSender event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, config *util.Config, eventSender event.EventSender) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:     store,
		tokenMaker:  tokenMaker,
		config:      config,
		eventSender: eventSender,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")

	api.POST("/users", server.createUser)
	api.POST("/login", server.loginUser)
	api.POST("/logout", server.logoutUser)
	api.GET("/me", authMiddleware(server.tokenMaker), server.getCurrentUser)

	itemGroup := api.Group("/items")
	{
		itemGroup.GET("", server.listItems)
		itemGroup.GET(":id", server.getItemDetails)
		itemGroup.GET("by-slug/:slug", server.getItemBySlug)
		itemGroup.GET("category/:category", server.listItemsByCategory)
		itemGroup.POST("", authMiddleware(server.tokenMaker), server.createItem)

		itemGroup.GET(":id/bids", server.listItemBids)
		itemGroup.POST(":id/bid", authMiddleware(server.tokenMaker), server.placeBid)
		itemGroup.POST(":id/buy-it-now", authMiddleware(server.tokenMaker), server.buyItemNow)

		itemGroup.GET(":id/stream", server.streamItemEvents) // SSE endpoint
	}

	cartGroup := api.Group("/cart", authMiddleware(server.tokenMaker))
	{
		cartGroup.GET("", server.listCartItems)
		cartGroup.POST("/add/:itemId", server.addCartItem)
		cartGroup.DELETE("/remove/:itemId", server.removeCartItem)
		cartGroup.GET("/count", server.countCartItems)
		cartGroup.DELETE("/clear", server.clearCart)
	}

	savedGroup := api.Group("/saved", authMiddleware(server.tokenMaker))
	{
		savedGroup.GET("", server.listSavedItems)
		savedGroup.POST("/add", server.saveItem)
		savedGroup.POST("/remove", server.unsaveItem)
		savedGroup.POST("/check", server.checkSavedItem)
	}

	api.GET("/orders", authMiddleware(server.tokenMaker), server.listUserOrders)
	api.POST("/checkout", authMiddleware(server.tokenMaker), server.checkout)

	api.POST("/seed", server.seedData)

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// Handler exposes the router for tests and embedding.
func (server *Server) Handler() http.Handler {
	return server.router
}
