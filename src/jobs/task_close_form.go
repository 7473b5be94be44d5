package jobs

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"Backend-Recruit-Console/src/database"

	"github.com/hibiken/asynq"
)

const TypeCloseForm = "form:close"

type CloseFormPayload struct {
	FormID string `json:"form_id"`
}

// NewCloseFormTask builds the task that deactivates a form at its end date.
func NewCloseFormTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(CloseFormPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseForm, payload), nil
}

func closeTaskID(formID string) string {
	return "close-form-" + formID
}

// ScheduleCloseForm (re)schedules the auto-close job for one form.
// Any previously scheduled job for the same form is deleted first so a
// schema update never leaves a stale deadline behind.
func ScheduleCloseForm(formID string, runAt time.Time) error {
	if database.AsynqClient == nil {
		return errors.New("asynq client is not initialized")
	}

	DeleteCloseForm(formID)

	task, err := NewCloseFormTask(formID)
	if err != nil {
		log.Printf("❌ Failed to create close task for form %s: %v", formID, err)
		return err
	}

	_, err = database.AsynqClient.Enqueue(task, asynq.ProcessAt(runAt), asynq.TaskID(closeTaskID(formID)))
	if err != nil {
		log.Printf("❌ Failed to enqueue close task for form %s: %v", formID, err)
		return err
	}
	log.Printf("✅ Task scheduled: %s | RunAt=%s", closeTaskID(formID), runAt.Format(time.RFC3339))
	return nil
}

// DeleteCloseForm removes a pending auto-close job, if one exists.
func DeleteCloseForm(formID string) {
	if database.RedisURI == "" {
		return
	}
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: database.RedisURI})
	err := inspector.DeleteTask("default", closeTaskID(formID))
	if err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ Failed to delete task "+closeTaskID(formID)+", then skipping:", err)
	}
}
