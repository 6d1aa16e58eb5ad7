package controllers

import (
	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
	courseService "github.com/zalakuldip2011/edemy-sub001/services/course"

	"github.com/zalakuldip2011/edemy-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// SearchCatalog pages through published courses. No auth required.
func SearchCatalog(c *fiber.Ctx) error {
	filter, ok := c.Locals("catalogFilter").(courseService.CatalogFilter)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	pageNum := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	sortKey, _ := c.Locals("sort").(string)

	page, err := queries.SearchPublished(c.Context(), filter, pageNum, limit, sortKey)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to search courses!")
	}

	// The catalog card never needs the nested content
	for i := range page.Courses {
		page.Courses[i].Sections = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", page)
}

// GetPublicCourse returns the public detail of one published course. Lecture
// bodies and video references are redacted except for free previews.
func GetPublicCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := queries.GetByID(c.Context(), courseID, nil)
	if err != nil {
		return courseErrorResponse(c, err, "Failed to fetch course!")
	}

	if !course.IsPublished() {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	redactCourseContent(course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// redactCourseContent strips everything a visitor has not paid for. The
// curriculum outline (titles, durations, order) stays visible.
func redactCourseContent(course *courseModels.Course) {
	for si := range course.Sections {
		for li := range course.Sections[si].Lectures {
			lecture := &course.Sections[si].Lectures[li]
			if lecture.IsFreePreview {
				continue
			}
			lecture.VideoReference = ""
			lecture.ArticleBody = ""
			lecture.Resources = nil
		}
	}
}
