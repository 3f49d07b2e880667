package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/theOrangeShi/seo-analazing/models"
)

// analysisSteps is the number of metric phases reported on progress events.
const analysisSteps = 12

// Stream runs a full analysis in a worker goroutine and returns its
// event channel. The channel carries zero or more progress events, then
// exactly one terminal event, and is closed. Cancelling ctx stops the
// worker at its next suspension point and ends the stream.
func (a *Analyzer) Stream(ctx context.Context, rawURL string, fullSite bool) <-chan models.ProgressEvent {
	events := make(chan models.ProgressEvent, 128)

	go func() {
		defer close(events)

		send := func(ev models.ProgressEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}

		step := 0
		onProgress := func(msg string) {
			ev := models.ProgressEvent{Type: models.EventProgress, Message: msg}
			// Metric phases carry a step counter; crawl and setup
			// messages are unnumbered.
			if strings.HasPrefix(msg, "Analyzing ") {
				step++
				ev.Step = step
				ev.Total = analysisSteps
			}
			send(ev)
		}

		send(models.ProgressEvent{Type: models.EventProgress, Message: "Starting SEO analysis..."})

		outcome, err := a.Analyze(ctx, rawURL, fullSite, onProgress)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("streaming analysis cancelled", "url", rawURL)
				return
			}
			msg := "analysis failed"
			var ae *models.AuditError
			if errors.As(err, &ae) {
				msg = ae.Message
			}
			slog.Error("streaming analysis failed", "url", rawURL, "error", err)
			send(models.ProgressEvent{Type: models.EventError, Message: msg})
			return
		}

		send(models.ProgressEvent{Type: models.EventComplete, Data: outcome.Report()})
	}()

	return events
}
