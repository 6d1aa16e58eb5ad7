package controllers

import (
	"errors"
	"log"

	"github.com/zalakuldip2011/edemy-sub001/database"
	"github.com/zalakuldip2011/edemy-sub001/middleware"
	"github.com/zalakuldip2011/edemy-sub001/models"
	courseService "github.com/zalakuldip2011/edemy-sub001/services/course"
	"github.com/zalakuldip2011/edemy-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	lifecycle *courseService.LifecycleService
	queries   *courseService.QueryService
)

// InitCourseServices wires the course services to the connected database.
// Called once from main after ConnectDb.
func InitCourseServices(db *gorm.DB) {
	repo := database.NewCourseRepo(db)
	lifecycle = courseService.NewLifecycleService(repo)
	queries = courseService.NewQueryService(repo)
}

// courseErrorResponse translates service errors into the response envelope.
func courseErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, courseService.ErrCourseNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if errors.Is(err, courseService.ErrNotCourseOwner) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}
	if notReady, ok := courseService.AsNotReady(err); ok {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Course is not ready to publish!", fiber.Map{
			"errors": notReady.Errors,
		})
	}
	log.Printf("Course operation failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
}

// CreateCourse creates a new draft course owned by the caller
func CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payload, ok := c.Locals("validatedCoursePayload").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := lifecycle.Create(c.Context(), userId, payload)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse merges a partial payload into an owned course
func UpdateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	payload, ok := c.Locals("validatedCoursePayload").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := lifecycle.Update(c.Context(), courseID, userId, payload)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// PublishCourse runs the readiness checklist and flips the course live
func PublishCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := lifecycle.Publish(c.Context(), courseID, userId)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to publish course!")
	}

	// Notify the instructor asynchronously; publishing never waits on email.
	var owner models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&owner).Error; err == nil {
		go utils.SendCoursePublishedEmail(owner.Email, owner.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// UnpublishCourse returns a course to draft
func UnpublishCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := lifecycle.Unpublish(c.Context(), courseID, userId)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to unpublish course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unpublished successfully!", course)
}

// DeleteCourse soft deletes a course
func DeleteCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if _, err := lifecycle.Delete(c.Context(), courseID, userId); err != nil {
		return courseErrorResponse(c, err, "Failed to delete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists all of the caller's courses, drafts included
func GetMyCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses, err := queries.ListByOwner(c.Context(), userId)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetMyCourse fetches one owned course, draft or not
func GetMyCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := queries.GetByID(c.Context(), courseID, &userId)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to fetch course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
