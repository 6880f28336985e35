package version

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

const (
	Name        = "Podcast Catalog API"
	Description = "REST API for browsing and managing a podcast catalog"
)

// Info describes the running build
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	GitCommit   string `json:"git_commit"`
	BuildTime   string `json:"build_time"`
	GoVersion   string `json:"go_version"`
	Platform    string `json:"platform"`
	Status      string `json:"status"`
}

// Current returns the build information of this binary
func Current() Info {
	return Info{
		Name:        Name,
		Version:     Version,
		Description: Description,
		GitCommit:   GitCommit,
		BuildTime:   BuildTime,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Status:      "running",
	}
}

// Get handles version requests
// @Summary      Build information
// @Tags         system
// @Produce      json
// @Success      200 {object} version.Info
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Current())
	}
}
