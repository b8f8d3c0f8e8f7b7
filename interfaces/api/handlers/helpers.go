package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pc2-api/domain/dto"
	"pc2-api/domain/models"
	"pc2-api/domain/services"
	"pc2-api/pkg/logger"
	"pc2-api/pkg/utils"
)

const msgNotFound = "Not found."

// respondError แปลง error จาก service เป็น response
//   - ErrNotFound -> 404
//   - ValidationError ที่มี field -> 400 VALIDATION_ERROR
//   - ValidationError ระดับ request -> 400 BAD_REQUEST
//   - อื่นๆ -> 500
func respondError(c *fiber.Ctx, err error, action string) error {
	ctx := c.UserContext()

	if services.IsNotFound(err) {
		logger.WarnContext(ctx, action+" failed: not found", "error", err)
		return utils.NotFoundResponse(c, msgNotFound)
	}
	if verr, ok := services.AsValidation(err); ok {
		logger.WarnContext(ctx, action+" rejected", "error", verr)
		if len(verr.Fields) > 0 {
			return utils.ValidationErrorResponse(c, verr.Fields)
		}
		return utils.BadRequestResponse(c, verr.Message)
	}

	logger.ErrorContext(ctx, action+" failed", "error", err)
	return utils.InternalServerErrorResponse(c)
}

// pathID id ใน path ที่ parse ไม่ได้ถือว่าไม่พบ record
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseBody อ่าน JSON body แล้ว validate; ถ้าไม่ผ่านจะเขียน response ให้แล้ว (คืน false)
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	ctx := c.UserContext()

	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return false, utils.ValidationErrorResponse(c, errors)
	}
	return true, nil
}

// query อ่าน query string แบบสะสม error ต่อ field
type query struct {
	c      *fiber.Ctx
	errors map[string]string
}

func newQuery(c *fiber.Ctx) *query {
	return &query{c: c, errors: make(map[string]string)}
}

func (q *query) raw(name string) (string, bool) {
	v := strings.TrimSpace(q.c.Query(name))
	return v, v != ""
}

func (q *query) id(name string) *uint {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		q.errors[name] = "Enter a whole number."
		return nil
	}
	id := uint(n)
	return &id
}

func (q *query) priority(name string) *models.Priority {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errors[name] = "Enter a whole number."
		return nil
	}
	p := models.Priority(n)
	return &p
}

func (q *query) date(name string) *models.Date {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		q.errors[name] = "Enter a valid date."
		return nil
	}
	return &d
}

// flag มี key อยู่ก็ใช้ filter: "true" (ไม่สนตัวพิมพ์) = true ค่าอื่นรวมถึงค่าว่าง = false
func (q *query) flag(name string) *bool {
	if !q.c.Context().QueryArgs().Has(name) {
		return nil
	}
	v, _ := q.raw(name)
	b := strings.EqualFold(v, "true")
	return &b
}

// boolean รับ true/false/1/0 ค่าอื่น = error
func (q *query) boolean(name string) *bool {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		q.errors[name] = "Enter a valid boolean."
		return nil
	}
	return &b
}

func (q *query) taskStatus(name string) *models.TaskStatus {
	v, ok := q.raw(name)
	if !ok {
		return nil
	}
	s := models.TaskStatus(v)
	if !s.IsValid() {
		q.errors[name] = "Select a valid choice. " + v + " is not one of the available choices."
		return nil
	}
	return &s
}

func (q *query) listOptions() dto.ListOptions {
	return dto.ListOptions{
		Search:   q.c.Query("search"),
		Ordering: q.c.Query("ordering"),
	}
}

// fail เขียน 400 ถ้ามี error สะสมไว้
func (q *query) fail() (bool, error) {
	if len(q.errors) == 0 {
		return false, nil
	}
	logger.WarnContext(q.c.UserContext(), "Invalid query parameters", "errors", q.errors)
	return true, utils.ValidationErrorResponse(q.c, q.errors)
}
