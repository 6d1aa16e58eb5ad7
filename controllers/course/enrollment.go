package controllers

import (
	"time"

	"github.com/zalakuldip2011/edemy-sub001/database"
	"github.com/zalakuldip2011/edemy-sub001/middleware"
	"github.com/zalakuldip2011/edemy-sub001/models"
	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
	"github.com/zalakuldip2011/edemy-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Only live courses accept enrollments
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND state = ?", courseID, false, courseModels.StatePublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:        userID,
		CourseID:      courseID,
		Status:        "ENROLLED",
		TotalLectures: course.TotalLectures,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// GetCourseContent returns the full curriculum of a course the caller is
// enrolled in. Archived courses stay readable for already-enrolled students.
func GetCourseContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var completions []courseModels.LectureCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&completions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", fiber.Map{
		"course":      course,
		"enrollment":  enrollment,
		"completions": completions,
	})
}

// MarkLectureComplete records one lecture as finished and recomputes the
// enrollment's progress from the completion count.
func MarkLectureComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	sectionOrder := c.Locals("sectionOrder").(int)
	lectureOrder := c.Locals("lectureOrder").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if findLecture(&course, sectionOrder, lectureOrder) == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	// Idempotent: completing the same lecture twice is a no-op
	var existing courseModels.LectureCompletion
	if err := database.Database.Db.Where(
		"user_id = ? AND course_id = ? AND section_order = ? AND lecture_order = ? AND is_deleted = ?",
		userID, courseID, sectionOrder, lectureOrder, false,
	).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture already completed!", enrollment)
	}

	completion := courseModels.LectureCompletion{
		UserID:       userID,
		CourseID:     courseID,
		SectionOrder: sectionOrder,
		LectureOrder: lectureOrder,
	}
	if err := database.Database.Db.Create(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lecture complete!", nil)
	}

	var completed int64
	database.Database.Db.Model(&courseModels.LectureCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&completed)

	enrollment.CompletedLectures = int(completed)
	enrollment.TotalLectures = course.TotalLectures
	if course.TotalLectures > 0 {
		enrollment.Progress = float64(completed) / float64(course.TotalLectures) * 100
	}
	enrollment.Status = "IN_PROGRESS"
	if enrollment.CompletedLectures >= course.TotalLectures && course.TotalLectures > 0 {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked complete!", enrollment)
}

// GetLecturePlayback exchanges a lecture's opaque video reference for a
// short-lived playback URL. The route requires a signed-in user; enrolled
// users get every lecture, everyone else only free previews.
func GetLecturePlayback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	sectionOrder := c.Locals("sectionOrder").(int)
	lectureOrder := c.Locals("lectureOrder").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lecture := findLecture(&course, sectionOrder, lectureOrder)
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	if lecture.ContentType != courseModels.ContentTypeVideo || lecture.VideoReference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lecture has no video!", nil)
	}

	if !lecture.IsFreePreview {
		var enrollment courseModels.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
		}
	}

	playbackURL, err := utils.GetPlaybackURL(c.Context(), lecture.VideoReference)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch playback URL!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Playback URL fetched successfully!", fiber.Map{
		"playback_url":     playbackURL,
		"duration_seconds": lecture.DurationSeconds,
	})
}

// findLecture resolves a lecture by the position-assigned orders.
func findLecture(course *courseModels.Course, sectionOrder, lectureOrder int) *courseModels.Lecture {
	for si := range course.Sections {
		if course.Sections[si].Order != sectionOrder {
			continue
		}
		for li := range course.Sections[si].Lectures {
			if course.Sections[si].Lectures[li].Order == lectureOrder {
				return &course.Sections[si].Lectures[li]
			}
		}
	}
	return nil
}
