// Package subnet ограничивает служебные маршруты (/metrics) доверенной подсетью.
package subnet

import (
	"net"
	"net/http"

	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/gin-gonic/gin"
)

// TrustedSubnetMiddleware пропускает только клиентов из подсети trustedSubnet
// (CIDR, например "10.0.0.0/8"). IP берётся из X-Real-IP, а без него - из
// адреса соединения.
//
// Пустая подсеть ничего не ограничивает. Невалидный CIDR закрывает доступ всем.
//
//	r.GET("/metrics", subnet.TrustedSubnetMiddleware(cfg.TrustedSubnet), h)
func TrustedSubnetMiddleware(trustedSubnet string) gin.HandlerFunc {
	if trustedSubnet == "" {
		return func(c *gin.Context) { c.Next() }
	}

	_, ipNet, err := net.ParseCIDR(trustedSubnet)
	if err != nil {
		logger.Log().Errorw("невалидная доверенная подсеть", "cidr", trustedSubnet, "error", err)
		return func(c *gin.Context) {
			c.AbortWithStatus(http.StatusForbidden)
		}
	}

	return func(c *gin.Context) {
		realIP := c.GetHeader("X-Real-IP")
		if realIP == "" {
			realIP = c.RemoteIP()
		}

		ip := net.ParseIP(realIP)
		if ip == nil || !ipNet.Contains(ip) {
			logger.Log().Warnw("доступ запрещен", "ip", realIP, "subnet", trustedSubnet, "uri", c.Request.RequestURI)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
