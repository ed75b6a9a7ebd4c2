package web

import (
	"net/http"

	"guestsign/pkg/logger"
	"guestsign/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController 健康检查
type HealthController struct {
	db *gorm.DB
}

// NewHealthController 创建控制器
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check 检查数据库连接
func (hc *HealthController) Check(c *gin.Context) {
	sqlDB, err := hc.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		logger.LogIf(err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Response{
			Status:  response.Error,
			Message: "database unavailable",
		})
		return
	}

	response.JSON(c, gin.H{"status": "ok"})
}
