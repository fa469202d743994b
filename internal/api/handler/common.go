package handler

import (
	"MoodMastery/internal/pkg/response"
	"MoodMastery/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

// parseEntryID 解析路径中的 :id，失败时直接写回参数错误
func parseEntryID(c *gin.Context) (uint64, bool) {
	id, err := util.ParseUint64(c.Param("id"))
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, "参数错误")
		return 0, false
	}
	return id, true
}

// bindJSON 绑定并校验请求体
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Fail(c, response.BadRequest, "Json错误")
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return false
	}
	return true
}

// bindQuery 绑定并校验查询参数
func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.Fail(c, response.BadRequest, "参数错误")
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return false
	}
	return true
}
