package handler

import (
	"github.com/Popolzen/wishlists/internal/audit"
	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/Popolzen/wishlists/internal/middleware/compressor"
	"github.com/Popolzen/wishlists/internal/middleware/subnet"
	"github.com/Popolzen/wishlists/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Register вешает все маршруты API на r
func Register(r gin.IRouter, d Deps) {
	r.GET("/health", HealthHandler(d))

	items := r.Group("/items")
	items.POST("", createHandler(d, audit.EntityItem, d.Repo.CreateItem, func(r model.ItemResponse) uuid.UUID { return r.ID }))
	items.GET("", listHandler(d, d.Repo.ListItems))
	items.GET("/:id", getHandler(d, d.Repo.GetItem))
	items.PUT("/:id", updateHandler(d, audit.EntityItem, updateItem(d)))
	items.DELETE("/:id", deleteHandler(d, audit.EntityItem, d.Repo.DeleteItem, itemBlobs(d)))
	items.PUT("/:id/picture", putAttachmentHandler(d, itemPicture(d)))
	items.GET("/:id/picture", getAttachmentHandler(d, itemPicture(d)))
	items.DELETE("/:id/picture", deleteAttachmentHandler(d, itemPicture(d)))

	users := r.Group("/users")
	users.POST("", createHandler(d, audit.EntityUser, d.Repo.CreateUser, func(r model.UserResponse) uuid.UUID { return r.ID }))
	users.GET("", listHandler(d, d.Repo.ListUsers))
	users.GET("/:id", getHandler(d, d.Repo.GetUser))
	users.PUT("/:id", updateHandler(d, audit.EntityUser, updateUser(d)))
	users.DELETE("/:id", deleteHandler(d, audit.EntityUser, d.Repo.DeleteUser, userBlobs(d)))
	users.GET("/:id/wishlists", relatedHandler(d, d.Repo.ListUserWishlists))
	users.GET("/:id/subscribers", relatedHandler(d, d.Repo.ListUserSubscribers))
	users.GET("/:id/subscriptions", relatedHandler(d, d.Repo.ListUserSubscriptions))
	users.PUT("/:id/avatar", putAttachmentHandler(d, userAvatar(d)))
	users.GET("/:id/avatar", getAttachmentHandler(d, userAvatar(d)))
	users.DELETE("/:id/avatar", deleteAttachmentHandler(d, userAvatar(d)))

	wishlists := r.Group("/wishlists")
	wishlists.POST("", createHandler(d, audit.EntityWishlist, d.Repo.CreateWishlist, func(r model.WishlistResponse) uuid.UUID { return r.ID }))
	wishlists.GET("", listHandler(d, d.Repo.ListWishlists))
	wishlists.GET("/:id", getHandler(d, d.Repo.GetWishlist))
	wishlists.PUT("/:id", updateHandler(d, audit.EntityWishlist, d.Repo.UpdateWishlist))
	wishlists.DELETE("/:id", deleteHandler(d, audit.EntityWishlist, d.Repo.DeleteWishlist, wishlistBlobs(d)))
	wishlists.GET("/:id/items", relatedHandler(d, d.Repo.ListWishlistItems))

	subscriptions := r.Group("/subscriptions")
	subscriptions.POST("", createHandler(d, audit.EntitySubscription, d.Repo.CreateSubscription, func(r model.SubscriptionResponse) uuid.UUID { return r.ID }))
	subscriptions.GET("", listHandler(d, d.Repo.ListSubscriptions))
	subscriptions.GET("/:id", getHandler(d, d.Repo.GetSubscription))
	subscriptions.DELETE("/:id", deleteHandler(d, audit.EntitySubscription, d.Repo.DeleteSubscription, nil))
}

// NewRouter собирает gin с middleware: восстановление после паники,
// лог запросов, метрики, gzip. API висит под rootPath, /metrics - в корне
// и доступен только из d.TrustedSubnet, если она задана.
func NewRouter(d Deps, rootPath string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestResponseLogger())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", subnet.TrustedSubnetMiddleware(d.TrustedSubnet), gin.WrapH(d.Metrics.Handler()))
	}
	r.Use(compressor.Compresser())

	Register(r.Group(rootPath), d)
	return r
}
