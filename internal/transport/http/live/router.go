package livehttp

import (
	"errors"
	"net/http"
	"time"

	"okxpos/internal/logger"
	"okxpos/internal/monitor"
	"okxpos/internal/scheduler"
	"okxpos/internal/visual"

	"github.com/gin-gonic/gin"
)

// Router exposes the dashboard API under /api.
type Router struct {
	ctrl Controller
}

func NewRouter(ctrl Controller) *Router {
	return &Router{ctrl: ctrl}
}

// Register mounts the API routes on group.
func (r *Router) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.GET("/snapshot", r.handleSnapshot)
	group.GET("/logs", r.handleLogs)
	group.GET("/interval", r.handleGetInterval)
	group.PUT("/interval", r.handleSetInterval)
	group.POST("/start", r.handleStart)
	group.POST("/stop", r.handleStop)
}

// View pairs a snapshot with its chart options.
func View(s monitor.Snapshot) SnapshotView {
	return SnapshotView{Snapshot: s, Chart: visual.Options(s.Series)}
}

func (r *Router) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, View(r.ctrl.Snapshot()))
}

func (r *Router) handleLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": r.ctrl.Snapshot().Logs})
}

func (r *Router) handleGetInterval(c *gin.Context) {
	c.JSON(http.StatusOK, intervalResponse{Seconds: r.ctrl.Interval().Seconds(), Running: r.ctrl.Running()})
}

func (r *Router) handleSetInterval(c *gin.Context) {
	var req intervalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Seconds == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"seconds\": <number>}"})
		return
	}
	if !r.applyInterval(c, *req.Seconds) {
		return
	}
	c.JSON(http.StatusOK, intervalResponse{Seconds: r.ctrl.Interval().Seconds(), Running: r.ctrl.Running()})
}

// handleStart applies an optional interval and starts polling. Repeated
// starts while running only update the interval.
func (r *Router) handleStart(c *gin.Context) {
	var req intervalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Seconds != nil && !r.applyInterval(c, *req.Seconds) {
		return
	}
	started := r.ctrl.Start()
	if !started {
		logger.Debugf("start ignored: polling already running ip=%s", c.ClientIP())
	}
	c.JSON(http.StatusOK, startResponse{Started: started, Running: r.ctrl.Running(), Seconds: r.ctrl.Interval().Seconds()})
}

func (r *Router) handleStop(c *gin.Context) {
	r.ctrl.Stop()
	c.JSON(http.StatusOK, gin.H{"running": r.ctrl.Running()})
}

func (r *Router) applyInterval(c *gin.Context, seconds float64) bool {
	d := time.Duration(seconds * float64(time.Second))
	if err := r.ctrl.SetInterval(d); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scheduler.ErrIntervalTooShort) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return false
	}
	return true
}
