package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/sys"
	"gocloud.dev/pubsub"
)

var validate = validator.New()

type createEvent struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// Consume receives note events until ctx is done, handling at most maxWorkers of them at a time.
// Every message is acked, failures are only logged.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			handle(ctx, m.Body)
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if ctx.Err() != nil {
		return nil
	}

	return err
}

func handle(ctx context.Context, body []byte) {
	logger := sys.R.Log

	logger.Infof("message received: %s", string(body))
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		logger.Error("failed to parse body: ", err)
		return
	}

	data, err := json.Marshal(e.Data)
	if err != nil {
		logger.Error("failed to read event data: ", err)
		return
	}

	switch e.Type {
	case "create":
		var c createEvent
		if err := json.Unmarshal(data, &c); err != nil {
			logger.Errorf("failed to parse create event %s: err: %s", data, err)
			return
		}
		if err := validate.Struct(c); err != nil {
			logger.Errorf("invalid create event %s: err: %s", data, err)
			return
		}
		if _, err := note.Create(ctx, note.NewNote{Title: *c.Title, Content: *c.Content}); err != nil {
			logger.Errorf("failed to create event %+v: err: %s", e.Data, err)
		}
	case "update":
		var u note.NoteUpdate
		if err := json.Unmarshal(data, &u); err != nil {
			logger.Errorf("failed to parse update event %s: err: %s", data, err)
			return
		}
		if _, err := note.Update(ctx, u.Id, u.UpdateNote); err != nil {
			logError(u.Id, "update", err)
		}
	case "delete":
		var d note.NoteDelete
		if err := json.Unmarshal(data, &d); err != nil {
			logger.Errorf("failed to parse delete event %s: err: %s", data, err)
			return
		}
		if _, err := note.Delete(ctx, d.Id); err != nil {
			logError(d.Id, "delete", err)
		}
	default:
		logger.Error("unknown event type: ", e.Type)
	}
}

func logError(id uint64, op string, err error) {
	if errors.Is(err, note.ErrNotFound) {
		sys.R.Log.Warnf("failed to %s note %d: not found", op, id)
		return
	}
	sys.R.Log.Errorf("failed to %s note %d: err: %s", op, id, err)
}
