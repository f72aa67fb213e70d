package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/koard/DukeFarm-Admin-sub000/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "dukefarm admin api พร้อมใช้งาน"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		RespondError(c, http.StatusInternalServerError, "ยังไม่ได้เชื่อมต่อฐานข้อมูล", nil)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM farmers").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "เชื่อมต่อฐานข้อมูลไม่สำเร็จ", []string{err.Error()})
		return
	}
	RespondData(c, http.StatusOK, gin.H{"message": "ฐานข้อมูลพร้อมใช้งาน", "farmers_in_db": count})
}
