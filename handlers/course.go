// course.go - Handles listing, reading and owner-only writes of courses

package handlers

import (
	"errors"   // For classifying persistence errors
	"net/http" // HTTP status codes
	"strconv"  // For parsing ids from the path

	"go-course-backend/database"   // Database access
	"go-course-backend/middleware" // Current user
	"go-course-backend/models"     // Course model

	"github.com/gin-gonic/gin" // Gin web framework
)

// CourseInput - Fields a client may set on a course
// Absent fields are left untouched on update. The owner is always the
// authenticated caller, so there is no owner field.
type CourseInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (in CourseInput) apply(course *models.Course) {
	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.EstimatedTime != nil {
		course.EstimatedTime = *in.EstimatedTime
	}
	if in.MaterialsNeeded != nil {
		course.MaterialsNeeded = *in.MaterialsNeeded
	}
}

type courseResponse struct { // Bookkeeping timestamps are left out
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   string       `json:"estimatedTime"`
	MaterialsNeeded string       `json:"materialsNeeded"`
	UserID          uint         `json:"userId"`
	Owner           userResponse `json:"owner"`
}

func newCourseResponse(course *models.Course) courseResponse {
	return courseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.UserID,
		Owner: userResponse{
			FirstName: course.Owner.FirstName,
			LastName:  course.Owner.LastName,
		},
	}
}

// ListCourses - Returns every course, newest first (GET /courses)
func ListCourses(c *gin.Context) {
	courses, err := database.ListCourses(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	out := make([]courseResponse, 0, len(courses)) // Empty list encodes as [] rather than null
	for i := range courses {
		out = append(out, newCourseResponse(&courses[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetCourse - Returns one course with its owner (GET /courses/:id)
func GetCourse(c *gin.Context) {
	course, ok := loadCourse(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCourseResponse(course))
}

// CreateCourse - Creates a course owned by the caller (POST /courses)
func CreateCourse(c *gin.Context) {
	var input CourseInput
	if !bindJSON(c, &input) {
		return
	}

	user := middleware.CurrentUser(c)
	course := models.Course{UserID: user.ID} // Owner is bound server side, never taken from the body
	input.apply(&course)

	if err := database.CreateCourse(c.Request.Context(), &course); err != nil {
		handleError(c, err)
		return
	}
	publishCourseEvent("created", &course)

	c.Header("Location", "/courses/"+strconv.FormatUint(uint64(course.ID), 10))
	c.Status(http.StatusCreated)
}

// UpdateCourse - Applies the supplied fields to a course the caller owns (PUT /courses/:id)
func UpdateCourse(c *gin.Context) {
	course, ok := loadOwnedCourse(c)
	if !ok {
		return
	}

	var input CourseInput
	if !bindJSON(c, &input) {
		return
	}
	input.apply(course)

	if err := database.SaveCourse(c.Request.Context(), course); err != nil {
		handleError(c, err)
		return
	}
	publishCourseEvent("updated", course)
	c.Status(http.StatusNoContent)
}

// DeleteCourse - Removes a course the caller owns (DELETE /courses/:id)
func DeleteCourse(c *gin.Context) {
	course, ok := loadOwnedCourse(c)
	if !ok {
		return
	}

	if err := database.DeleteCourse(c.Request.Context(), course); err != nil {
		handleError(c, err)
		return
	}
	publishCourseEvent("deleted", course)
	c.Status(http.StatusNoContent)
}

// loadCourse finds the course named by the :id path parameter, answering 404
// when there is none.
func loadCourse(c *gin.Context) (*models.Course, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 { // Not a valid id, so no such course
		courseNotFound(c)
		return nil, false
	}

	course, err := database.FindCourse(c.Request.Context(), uint(id))
	if errors.Is(err, database.ErrNotFound) {
		courseNotFound(c)
		return nil, false
	}
	if err != nil {
		handleError(c, err)
		return nil, false
	}
	return course, true
}

// loadOwnedCourse checks existence first, then ownership. A mismatch answers
// 403 before anything is mutated.
func loadOwnedCourse(c *gin.Context) (*models.Course, bool) {
	course, ok := loadCourse(c)
	if !ok {
		return nil, false
	}
	if course.UserID != middleware.CurrentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access Denied"})
		return nil, false
	}
	return course, true
}

func courseNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
}
