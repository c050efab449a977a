package worker

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/umersanii/CableManagement-sub001/internal/infra"
)

// EmailJobPayload carries everything needed to send one document by mail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// EmailWorker sends rendered documents as email attachments.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var p EmailJobPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}

	log.Info().Str("to", p.ToEmail).Str("pdf", p.PDFPath).Msg("sending document email")

	if err := w.mailer.SendDocument(p.ToEmail, p.Subject, p.Body, p.PDFPath); err != nil {
		log.Error().Str("to", p.ToEmail).Err(err).Msg("email send failed")
		return err
	}

	log.Info().Str("to", p.ToEmail).Msg("document email sent")
	return nil
}
