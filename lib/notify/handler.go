package notify

import (
	log "github.com/sirupsen/logrus"

	"hiring-flow-backend/config"
	"hiring-flow-backend/lib/smtp"
	"hiring-flow-backend/models"
)

// Request is one outbound notification about a decision link.
// The backend's obligation ends at producing the link and the draft;
// delivery failure never blocks a workflow transition.
type Request struct {
	To            string
	CandidateName string
	Position      string
	Kind          models.TokenKind
	Link          string
	TTLDays       int
}

// Draft is what the dashboard gets back: the decision link plus a
// pre-filled mail-client draft.
type Draft struct {
	Link    string `json:"link"`
	Mailto  string `json:"mailto"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Provider interface {
	DecisionRequest(req Request) Draft
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		emailFrom: config.Conf.Smtp.EmailFrom,
	}
}

type impl struct {
	emailFrom string
}

func (i impl) DecisionRequest(req Request) Draft {
	var subject, body string
	switch req.Kind {
	case models.TokenKindVerification:
		subject = verificationSubject(req.CandidateName)
		body = verificationBody(req.CandidateName, req.Position, req.Link, req.TTLDays)
	case models.TokenKindRecommendation:
		subject = recommendationSubject(req.CandidateName)
		body = recommendationBody(req.CandidateName, req.Position, req.Link, req.TTLDays)
	default:
		label := RoleLabel(req.Kind)
		subject = approvalSubject(label, req.CandidateName)
		body = approvalBody(label, req.CandidateName, req.Position, req.Link, req.TTLDays)
	}

	logger := log.
		WithField("to", req.To).
		WithField("kind", req.Kind)
	logger.WithField("link", req.Link).Info("decision link prepared")

	// Best effort only. With no smtp configured this is a no-op and the
	// dashboard falls back to the mailto draft.
	if smtp.Instance != nil {
		if err := smtp.Instance.SendEMail(i.emailFrom, req.To, body, subject); err != nil {
			logger.WithError(err).Warn("smtp send failed, mailto draft still returned")
		}
	}

	return Draft{
		Link:    req.Link,
		Mailto:  MailtoDraft(req.To, subject, body),
		Subject: subject,
		Body:    body,
	}
}
