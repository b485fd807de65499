package web

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminAuth holds the per-process session token and the salt used to hash
// visitor addresses. Both change on every restart.
type adminAuth struct {
	creds config.Admin
	token string
	salt  string
}

func newAdminAuth(creds config.Admin) (*adminAuth, error) {
	token, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	salt, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	return &adminAuth{creds: creds, token: token, salt: salt}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// enabled is false until a password is configured.
func (a *adminAuth) enabled() bool {
	return a.creds.Password != ""
}

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	return userOK && passOK
}

// hashIP is stable per address for the life of the process.
func (a *adminAuth) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !a.enabled() || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	a := s.admin
	log := s.log.WithField("area", "admin")
	if !a.enabled() {
		log.Warn("admin dashboard disabled: no admin password configured")
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title":    "Admin Login",
			"disabled": !a.enabled(),
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.check(c.PostForm("username"), c.PostForm("password")) {
			log.WithField("client", a.hashIP(c.ClientIP())).Warn("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title":    "Admin Login",
				"error":    "Invalid credentials",
				"disabled": !a.enabled(),
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", c.Request.TLS != nil, true)
		log.WithField("client", a.hashIP(c.ClientIP())).Info("admin login")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.middleware())

	group.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := s.store.Stats(ctx)
		if err != nil {
			log.WithError(err).Error("load admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		messages, err := s.store.Messages(ctx, 20)
		if err != nil {
			log.WithError(err).Error("load messages")
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":     stats,
			"messages":  messages,
			"retention": s.settings.RetentionMonths,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/messages", func(c *gin.Context) {
		messages, err := s.store.Messages(c.Request.Context(), 200)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	group.POST("/privacy/prune", func(c *gin.Context) {
		months := s.settings.RetentionMonths
		if months <= 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Visitor retention is unlimited", "removed": 0})
			return
		}
		n, err := s.store.PruneVisitors(c.Request.Context(), time.Now().AddDate(0, -months, 0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Infof("privacy cleanup removed %d visitor records", n)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.WithField("client", a.hashIP(c.ClientIP())).Info("admin stats exported")
		c.JSON(http.StatusOK, stats)
	})
}
