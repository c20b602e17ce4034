package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"net/http"
	"runtime"
	"time"
)

func (h *Handlers) StatusHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	percent, _ := cpu.Percent(0, false)

	cpuPercent := 0.0
	if len(percent) > 0 {
		cpuPercent = percent[0]
	}

	snap := h.poller.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"uptime":       time.Since(h.startTime).Truncate(time.Second).String(),
		"cpu_percent":  cpuPercent,
		"mem_sys_mb":   m.Sys / 1024 / 1024,
		"streams":      len(h.streams),
		"interval_sec": h.manager.Get().IntervalSeconds,
		"last_tick":    snap.LastTick,
		"ticks":        snap.Ticks,
		"youtube":      snap.YouTubeTotal,
		"twitch":       snap.TwitchTotal,
		"total":        snap.GrandTotal,
	})
}
