package notify

import (
	"fmt"
	"net/url"

	"hiring-flow-backend/models"
)

// VerificationLink builds the public salary-verification page URL.
func VerificationLink(baseURL, token, candidateName, position string) string {
	return fmt.Sprintf("%s/verify?token=%s&candidate=%s&position=%s",
		baseURL, url.QueryEscape(token), url.QueryEscape(candidateName), url.QueryEscape(position))
}

// ApprovalLink builds the public recommendation/approval page URL.
func ApprovalLink(baseURL, token string, kind models.TokenKind, candidateName, position string) string {
	return fmt.Sprintf("%s/approve?token=%s&type=%s&candidate=%s&position=%s",
		baseURL, url.QueryEscape(token), url.QueryEscape(string(kind)), url.QueryEscape(candidateName), url.QueryEscape(position))
}

// RecommendationLink builds the public reference-recommendation page URL.
func RecommendationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/recommendation-response?token=%s", baseURL, url.QueryEscape(token))
}

// MailtoDraft builds a mail-client draft link. The dashboard opens it so
// the internal user sends the email themselves; the backend never owns
// notification delivery.
func MailtoDraft(to, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, url.QueryEscape(subject), url.QueryEscape(body))
}

func verificationSubject(candidateName string) string {
	return fmt.Sprintf("Salary Package Verification Required - %s", candidateName)
}

func verificationBody(candidateName, position, link string, ttlDays int) string {
	return fmt.Sprintf(`Hello,

A salary package for %s (position: %s) is ready for your verification.

Please review and submit your decision here:
%s

This link will expire in %d days.`, candidateName, position, link, ttlDays)
}

func approvalSubject(roleLabel, candidateName string) string {
	return fmt.Sprintf("%s Decision Required - %s", roleLabel, candidateName)
}

func approvalBody(roleLabel, candidateName, position, link string, ttlDays int) string {
	return fmt.Sprintf(`Hello,

Your decision as %s is requested for %s (position: %s).

Please review and respond here:
%s

This link will expire in %d days.`, roleLabel, candidateName, position, link, ttlDays)
}

func recommendationSubject(candidateName string) string {
	return fmt.Sprintf("Recommendation Request - %s", candidateName)
}

func recommendationBody(candidateName, position, link string, ttlDays int) string {
	return fmt.Sprintf(`Hello,

You have been requested to provide a recommendation for %s, who has applied for the position of %s.

Please submit your recommendation here:
%s

This link will expire in %d days.`, candidateName, position, link, ttlDays)
}

// RoleLabel is the human name of an approval token kind.
func RoleLabel(kind models.TokenKind) string {
	switch kind {
	case models.TokenKindVerification:
		return "Head, Talent Strategy"
	case models.TokenKindHiringManager1:
		return "Hiring Manager 1"
	case models.TokenKindHiringManager2:
		return "Hiring Manager 2"
	case models.TokenKindApprover1:
		return "Approver 1"
	case models.TokenKindApprover2:
		return "Approver 2"
	}
	return string(kind)
}
