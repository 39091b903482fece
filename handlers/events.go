// events.go - Course change notifications over MQTT

package handlers

import (
	"time"

	"go-course-backend/config"
	"go-course-backend/logger"
	"go-course-backend/models"
	"go-course-backend/mqtt"
)

// CourseEvent is the JSON payload published on <prefix>/<action>.
type CourseEvent struct {
	Action   string    `json:"action"`
	CourseID uint      `json:"courseId"`
	UserID   uint      `json:"userId"`
	Title    string    `json:"title"`
	At       time.Time `json:"at"`
}

func newCourseEvent(action string, course *models.Course) CourseEvent {
	return CourseEvent{
		Action:   action,
		CourseID: course.ID,
		UserID:   course.UserID,
		Title:    course.Title,
		At:       time.Now().UTC(),
	}
}

// publishCourseEvent announces a committed change. Delivery is best effort and
// happens off the request path, so a slow broker never delays the response.
func publishCourseEvent(action string, course *models.Course) {
	if !mqtt.Enabled() {
		return
	}
	event := newCourseEvent(action, course)
	topic := config.Load().MQTTTopicPrefix + "/" + action

	go func() {
		if err := mqtt.PublishJSON(topic, event); err != nil {
			logger.Warningf("publishing %s for course %d: %v", topic, event.CourseID, err)
		}
	}()
}
