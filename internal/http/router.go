package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/internal/http/handlers"
	"github.com/you/rentalfront/internal/http/middleware"
)

// BuildRouter wires every route with its session and capability guards.
// Capability checks here shape what the client may drive; the backend
// re-checks everything on its side.
func BuildRouter(
	ah *handlers.AuthHandler,
	rh *handlers.ReservationHandler,
	ch *handlers.ContractHandler,
	mh *handlers.ManagementHandler,
	sh *handlers.SystemConfigHandler,
	sess *middleware.SessionMW,
	caps *middleware.CapabilityMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/register/guest", ah.RegisterGuest)
	auth.POST("/register/partner", ah.RegisterPartner)

	me := r.Group("/auth").Use(sess.WithSession())
	me.GET("/me", ah.Me)
	me.POST("/logout", ah.Logout)
	me.PATCH("/me", caps.Require("profile", "edit"), ah.UpdateProfile)

	r.GET("/dashboard", sess.WithSession(), caps.Require("dashboard", "view"), mh.Dashboard)

	res := r.Group("/reservations").Use(sess.WithSession())
	res.GET("", caps.Require("reservations", "view"), rh.List)
	res.GET("/my-branch", caps.Require("branch-reservations", "view"), rh.ListMyBranch)
	res.GET("/mine", caps.Require("my-reservations", "view"), rh.ListMine)
	res.POST("", caps.Require("my-reservations", "create"), rh.Create)
	res.DELETE("/:id", caps.Require("my-reservations", "cancel"), rh.Delete)
	res.POST("/:id/approve", caps.Require("reservations", "transition"), rh.Approve)
	res.POST("/:id/cancel", caps.Require("reservations", "transition"), rh.Cancel)
	res.POST("/:id/mark-completed", caps.Require("reservations", "transition"), rh.MarkCompleted)
	res.POST("/:id/mark-no-show", caps.Require("reservations", "transition"), rh.MarkNoShow)
	res.GET("/:id/contract-prefill", caps.Require("contracts", "edit"), rh.Prefill)
	res.POST("/:id/convert", caps.Require("contracts", "edit"), rh.Convert)

	con := r.Group("/contracts").Use(sess.WithSession())
	con.POST("", caps.Require("contracts", "edit"), ch.Create)
	con.GET("/:id", caps.Require("contracts", "view"), ch.Get)
	con.PUT("/:id", caps.Require("contracts", "edit"), ch.Update)
	con.GET("/:id/download", caps.Require("contracts", "view"), ch.Download)
	con.POST("/:id/signed-file", caps.Require("contracts", "edit"), ch.StageSignedFile)
	con.DELETE("/:id/signed-file", caps.Require("contracts", "edit"), ch.DiscardSignedFile)
	con.POST("/:id/signed-file/confirm", caps.Require("contracts", "edit"), ch.ConfirmSignedUpload)
	con.PUT("/:id/deposit", caps.Require("contracts", "edit"), ch.ConfirmDeposit)
	con.POST("/:id/deposit/momo", caps.Require("contracts", "edit"), ch.InitiateDepositMomo)

	mgmt := r.Group("/management").Use(sess.WithSession())
	mgmt.GET("/tenants/:id", caps.Require("profiles", "view"), mh.GetTenant)
	mgmt.PATCH("/tenants/:id", caps.Require("profiles", "edit"), mh.PatchTenant)
	mgmt.GET("/partners/:id", caps.Require("profiles", "view"), mh.GetPartner)
	mgmt.PATCH("/partners/:id", caps.Require("profiles", "edit"), mh.PatchPartner)
	mgmt.GET("/employees/:id", caps.Require("employees", "view"), mh.GetEmployee)
	mgmt.PATCH("/employees/:id/status", caps.Require("employees", "edit"), mh.PatchEmployeeStatus)

	adm := r.Group("/admin").Use(sess.WithSession())
	adm.POST("/register/employee", caps.Require("employees", "edit"), ah.RegisterEmployee)

	cfg := r.Group("/system-config").Use(sess.WithSession())
	cfg.GET("", caps.Require("system-config", "view"), sh.Get)
	cfg.PUT("", caps.Require("system-config", "edit"), sh.Update)

	return r
}
