// Package worker consumes the mail queue and delivers the notification
// emails. Retry lives here, not in the API process: a failed send goes back
// on the queue until the attempt budget runs out.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Librity/gympoint-back-end/internal/infra/queue"

	"go.uber.org/zap"
)

const maxAttempts = 3

// SendFunc delivers one email. Matches mailer.Send.
type SendFunc func(to, subject, body string) error

type Worker struct {
	queue  *queue.Queue
	send   SendFunc
	logger *zap.SugaredLogger
}

func New(q *queue.Queue, send SendFunc, logger *zap.Logger) *Worker {
	return &Worker{
		queue:  q,
		send:   send,
		logger: logger.Sugar(),
	}
}

// Run blocks consuming jobs until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Infow("Mail worker started", "kinds", queue.Kinds())

	for {
		job, err := w.queue.Dequeue(ctx, 5*time.Second, queue.Kinds()...)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.Errorw("Failed to dequeue job", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		w.Handle(ctx, *job)
	}
}

// Handle renders and sends one job, re-enqueueing on failure.
func (w *Worker) Handle(ctx context.Context, job queue.Job) {
	to, subject, body, err := renderEmail(job)
	if err != nil {
		w.logger.Errorw("Dropping malformed job", "job_id", job.ID, "kind", job.Kind, "error", err)
		return
	}

	if err := w.send(to, subject, body); err != nil {
		if job.Attempts >= maxAttempts {
			w.logger.Errorw("Dropping job after final attempt",
				"job_id", job.ID, "kind", job.Kind, "attempts", job.Attempts, "error", err)
			return
		}
		w.logger.Warnw("Send failed, requeueing",
			"job_id", job.ID, "kind", job.Kind, "attempts", job.Attempts, "error", err)
		if err := w.queue.Requeue(ctx, job); err != nil {
			w.logger.Errorw("Failed to requeue job", "job_id", job.ID, "error", err)
		}
		return
	}

	w.logger.Infow("Mail sent", "job_id", job.ID, "kind", job.Kind, "to", to)
}

type studentPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type planPayload struct {
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type membershipPayload struct {
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Price     float64        `json:"price"`
	Student   studentPayload `json:"student"`
	Plan      planPayload    `json:"plan"`
}

type helpOrderPayload struct {
	Question string         `json:"question"`
	Answer   *string        `json:"answer"`
	Student  studentPayload `json:"student"`
}

func renderEmail(job queue.Job) (to, subject, body string, err error) {
	switch job.Kind {
	case queue.MembershipCreationMail:
		var p membershipPayload
		if err = json.Unmarshal(job.Payload, &p); err != nil {
			return
		}
		to = p.Student.Email
		subject = "Welcome to GymPoint!"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour %s membership is active from %s until %s.\nMonthly price: $%.2f.\n\nSee you at the gym!\nGymPoint Team",
			p.Student.Name, p.Plan.Title, formatDate(p.StartDate), formatDate(p.EndDate), p.Price)

	case queue.MembershipUpdateMail:
		var p membershipPayload
		if err = json.Unmarshal(job.Payload, &p); err != nil {
			return
		}
		to = p.Student.Email
		subject = "Your GymPoint membership was updated"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour membership is now on the %s plan, valid until %s.\nMonthly price: $%.2f.\n\nGymPoint Team",
			p.Student.Name, p.Plan.Title, formatDate(p.EndDate), p.Price)

	case queue.MembershipCancellationMail:
		var p membershipPayload
		if err = json.Unmarshal(job.Payload, &p); err != nil {
			return
		}
		to = p.Student.Email
		subject = "Your GymPoint membership was cancelled"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour %s membership has been cancelled. It would have run until %s.\n\nWe hope to see you again.\nGymPoint Team",
			p.Student.Name, p.Plan.Title, formatDate(p.EndDate))

	case queue.HelpOrderAnswerMail:
		var p helpOrderPayload
		if err = json.Unmarshal(job.Payload, &p); err != nil {
			return
		}
		answer := ""
		if p.Answer != nil {
			answer = *p.Answer
		}
		to = p.Student.Email
		subject = "Your question was answered"
		body = fmt.Sprintf(
			"Hi %s,\n\nYou asked:\n%s\n\nOur answer:\n%s\n\nGymPoint Team",
			p.Student.Name, p.Question, answer)

	default:
		err = fmt.Errorf("unknown job kind: %s", job.Kind)
	}
	return
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
