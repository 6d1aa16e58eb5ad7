package courseValidator

import (
	"strconv"
	"strings"

	"github.com/zalakuldip2011/edemy-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

// CreateCourse validates course creation. Only the title is required at the
// field level; everything else may arrive later across edit sessions, so it
// is defaulted by the normalizer rather than rejected here.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := map[string]interface{}{}
		if err := c.BodyParser(&payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		title, _ := payload["title"].(string)
		if strings.TrimSpace(title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoursePayload", payload)
		return c.Next()
	}
}

// UpdateCourse validates a partial course update. The payload is free-form;
// the normalizer decides what each present field means.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if handled := parseCourseID(c); handled != nil {
			return handled
		}

		payload := map[string]interface{}{}
		if err := c.BodyParser(&payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCoursePayload", payload)
		return c.Next()
	}
}

// CourseID validates the :id path parameter for id-only operations
// (publish, unpublish, delete, get).
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if handled := parseCourseID(c); handled != nil {
			return handled
		}
		return c.Next()
	}
}

// LectureRef validates the :id/:section/:lecture path parameters used by
// completion and playback.
func LectureRef() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if handled := parseCourseID(c); handled != nil {
			return handled
		}

		sectionOrder, err := strconv.Atoi(strings.TrimSpace(c.Params("section")))
		if err != nil || sectionOrder < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section order!", nil)
		}

		lectureOrder, err := strconv.Atoi(strings.TrimSpace(c.Params("lecture")))
		if err != nil || lectureOrder < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture order!", nil)
		}

		c.Locals("sectionOrder", sectionOrder)
		c.Locals("lectureOrder", lectureOrder)
		return c.Next()
	}
}

// parseCourseID stores the :id parameter as uint in locals, or responds
// with a 400 and returns the response error.
func parseCourseID(c *fiber.Ctx) error {
	courseIDStr := strings.TrimSpace(c.Params("id"))
	if courseIDStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	c.Locals("courseID", uint(courseID))
	return nil
}
