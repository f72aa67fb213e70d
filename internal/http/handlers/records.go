package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	"github.com/koard/DukeFarm-Admin-sub000/internal/forms"
	"github.com/koard/DukeFarm-Admin-sub000/internal/repositories"
)

// GET /api/records?page&limit&pondId&farmerId&recordType
func GetRecords(c *gin.Context) {
	q := parseListQuery(c, "pondId", "farmerId", "recordType")
	records, total, err := repositories.RecordRepository{}.List(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPage(c, records, domain.NewPagination(q.Page, q.Limit, total))
}

// GET /api/records/form-state returns the selectable options for the record form.
func GetRecordFormState(c *gin.Context) {
	RespondData(c, http.StatusOK, models.RecordFormState{
		RecordTypes: []models.FormOption{
			{Value: models.RecordTypeFeeding, Label: "ให้อาหาร"},
			{Value: models.RecordTypeWaterQuality, Label: "คุณภาพน้ำ"},
			{Value: models.RecordTypeHarvest, Label: "จับผลผลิต"},
			{Value: models.RecordTypeMortality, Label: "อัตราการตาย"},
		},
		Units: []models.FormOption{
			{Value: "kg", Label: "กิโลกรัม"},
			{Value: "g", Label: "กรัม"},
			{Value: "pcs", Label: "ตัว"},
			{Value: "mg_l", Label: "มก./ลิตร"},
		},
	})
}

// GET /api/records/:id
func GetRecordByID(c *gin.Context) {
	record, err := repositories.RecordRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, record)
}

func recordFromRequest(req forms.CreateRecordRequest) models.FarmRecord {
	return models.FarmRecord{
		PondID:     req.PondID,
		FarmerID:   req.FarmerID,
		RecordType: req.RecordType,
		Amount:     req.Amount,
		Unit:       req.Unit,
		Note:       req.Note,
		RecordedAt: req.RecordedAt,
	}
}

// POST /api/records
func CreateRecord(c *gin.Context) {
	var req forms.CreateRecordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	record, err := repositories.RecordRepository{}.Create(recordFromRequest(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusCreated, record)
}

// PUT /api/records/:id replaces the whole row.
func UpdateRecord(c *gin.Context) {
	var req forms.CreateRecordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}

	record := recordFromRequest(req)
	record.ID = c.Param("id")
	updated, err := repositories.RecordRepository{}.Update(record)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, updated)
}

// DELETE /api/records/:id
func DeleteRecord(c *gin.Context) {
	if err := (repositories.RecordRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
